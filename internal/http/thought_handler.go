package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"thoughts-api/internal/domain"
	"thoughts-api/internal/repository"
	"thoughts-api/internal/service"
)

// ThoughtHandler mantiene dependencias para los endpoints de thoughts.
type ThoughtHandler struct {
	logger      *zap.Logger
	thoughtServ *service.ThoughtService
}

// NewThoughtHandler crea una instancia de ThoughtHandler con dependencias necesarias.
func NewThoughtHandler(logger *zap.Logger, thoughtServ *service.ThoughtService) *ThoughtHandler {
	return &ThoughtHandler{
		logger:      logger,
		thoughtServ: thoughtServ,
	}
}

// ListThoughts maneja GET /thoughts.
func (h *ThoughtHandler) ListThoughts(c *gin.Context) {
	thoughts, err := h.thoughtServ.ListRecent(c.Request.Context())
	if err != nil {
		h.logger.Error("list thoughts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list thoughts", "detail": err.Error()})
		return
	}

	if thoughts == nil {
		thoughts = []domain.Thought{}
	}
	c.JSON(http.StatusOK, thoughts)
}

// CreateThought maneja POST /thoughts.
func (h *ThoughtHandler) CreateThought(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create thought request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	thought, err := h.thoughtServ.Create(c.Request.Context(), req.Message)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not save thought", "errors": verrs})
			return
		}
		h.logger.Error("create thought failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save thought", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, thought)
}

// LikeThought maneja PUT /thoughts/:id/like.
func (h *ThoughtHandler) LikeThought(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid like request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	thought, err := h.thoughtServ.ApplyLike(c.Request.Context(), id, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": `action must be "add" or "remove"`})
			return
		case errors.Is(err, pgx.ErrNoRows):
			c.JSON(http.StatusNotFound, gin.H{"error": "thought not found"})
			return
		case errors.Is(err, repository.ErrHeartsFloor):
			h.logger.Error("hearts update rejected", zap.String("thought_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update hearts", "detail": err.Error()})
			return
		default:
			h.logger.Error("like thought failed", zap.String("thought_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update hearts", "detail": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, thought)
}
