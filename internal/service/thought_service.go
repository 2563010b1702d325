package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"thoughts-api/internal/domain"
	"thoughts-api/internal/repository"
)

var ErrInvalidAction = errors.New("invalid like action")

// El listado devuelve siempre los 20 thoughts más recientes, sin paginación.
const recentLimit = 20

// ThoughtService coordina reglas de negocio para thoughts.
type ThoughtService struct {
	logger   *zap.Logger
	thoughts repository.ThoughtRepository
}

func NewThoughtService(logger *zap.Logger, thoughts repository.ThoughtRepository) *ThoughtService {
	return &ThoughtService{
		logger:   logger,
		thoughts: thoughts,
	}
}

// Create valida el mensaje y persiste un thought nuevo con hearts en cero.
func (s *ThoughtService) Create(ctx context.Context, message string) (domain.Thought, error) {
	if verrs := domain.ValidateMessage(message); verrs != nil {
		return domain.Thought{}, verrs
	}

	thought := domain.Thought{
		ID:        uuid.NewString(),
		Message:   message,
		Hearts:    0,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.thoughts.Create(ctx, thought); err != nil {
		return domain.Thought{}, err
	}
	return thought, nil
}

// ListRecent devuelve los thoughts más recientes, el más nuevo primero.
func (s *ThoughtService) ListRecent(ctx context.Context) ([]domain.Thought, error) {
	return s.thoughts.ListRecent(ctx, recentLimit)
}

// ApplyLike traduce la acción a un delta y delega el update atómico al store.
// Una acción desconocida se rechaza antes de tocar el repositorio.
func (s *ThoughtService) ApplyLike(ctx context.Context, id, action string) (domain.Thought, error) {
	var delta int
	switch action {
	case domain.LikeActionAdd:
		delta = 1
	case domain.LikeActionRemove:
		delta = -1
	default:
		return domain.Thought{}, ErrInvalidAction
	}

	return s.thoughts.AddHearts(ctx, id, delta)
}
