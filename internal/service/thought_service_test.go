package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"thoughts-api/internal/domain"
)

type mockThoughtRepo struct {
	lastCreated domain.Thought
	createErr   error
	createCalls int

	listData  []domain.Thought
	listErr   error
	lastLimit int

	heartsResult domain.Thought
	heartsErr    error
	heartsCalls  int
	lastID       string
	lastDelta    int
}

func (m *mockThoughtRepo) Create(_ context.Context, thought domain.Thought) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.lastCreated = thought
	return nil
}

func (m *mockThoughtRepo) ListRecent(_ context.Context, limit int) ([]domain.Thought, error) {
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listData, nil
}

func (m *mockThoughtRepo) AddHearts(_ context.Context, id string, delta int) (domain.Thought, error) {
	m.heartsCalls++
	m.lastID = id
	m.lastDelta = delta
	if m.heartsErr != nil {
		return domain.Thought{}, m.heartsErr
	}
	return m.heartsResult, nil
}

func TestThoughtServiceCreate_AssignsIDAndDefaults(t *testing.T) {
	repo := &mockThoughtRepo{}
	svc := NewThoughtService(zap.NewNop(), repo)

	before := time.Now().UTC()
	thought, err := svc.Create(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if thought.ID == "" {
		t.Fatalf("expected generated id")
	}
	if thought.Hearts != 0 {
		t.Fatalf("expected hearts 0, got %d", thought.Hearts)
	}
	if thought.CreatedAt.Before(before) {
		t.Fatalf("expected created_at at or after %v, got %v", before, thought.CreatedAt)
	}
	if repo.lastCreated.ID != thought.ID || repo.lastCreated.Message != "hello world" {
		t.Fatalf("expected persisted thought, got %+v", repo.lastCreated)
	}
}

func TestThoughtServiceCreate_RejectsInvalidMessageBeforeStore(t *testing.T) {
	repo := &mockThoughtRepo{}
	svc := NewThoughtService(zap.NewNop(), repo)

	_, err := svc.Create(context.Background(), "abcd")
	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if verrs[0].Rule != "minlength" {
		t.Fatalf("expected minlength violation, got %+v", verrs)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no store call, got %d", repo.createCalls)
	}

	_, err = svc.Create(context.Background(), strings.Repeat("a", 141))
	if !errors.As(err, &verrs) || verrs[0].Rule != "maxlength" {
		t.Fatalf("expected maxlength violation, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no store call, got %d", repo.createCalls)
	}
}

func TestThoughtServiceCreate_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &mockThoughtRepo{createErr: storeErr}
	svc := NewThoughtService(zap.NewNop(), repo)

	_, err := svc.Create(context.Background(), "hello world")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestThoughtServiceListRecent_UsesFixedLimit(t *testing.T) {
	repo := &mockThoughtRepo{listData: []domain.Thought{{ID: "t1"}, {ID: "t2"}}}
	svc := NewThoughtService(zap.NewNop(), repo)

	thoughts, err := svc.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastLimit != 20 {
		t.Fatalf("expected limit 20, got %d", repo.lastLimit)
	}
	if len(thoughts) != 2 || thoughts[0].ID != "t1" {
		t.Fatalf("expected repo data passthrough, got %+v", thoughts)
	}
}

func TestThoughtServiceApplyLike_MapsActionsToDeltas(t *testing.T) {
	repo := &mockThoughtRepo{heartsResult: domain.Thought{ID: "t1", Hearts: 1}}
	svc := NewThoughtService(zap.NewNop(), repo)

	thought, err := svc.ApplyLike(context.Background(), "t1", domain.LikeActionAdd)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastID != "t1" || repo.lastDelta != 1 {
		t.Fatalf("expected delta +1 for t1, got %d for %q", repo.lastDelta, repo.lastID)
	}
	if thought.Hearts != 1 {
		t.Fatalf("expected updated thought, got %+v", thought)
	}

	if _, err = svc.ApplyLike(context.Background(), "t1", domain.LikeActionRemove); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastDelta != -1 {
		t.Fatalf("expected delta -1, got %d", repo.lastDelta)
	}
}

func TestThoughtServiceApplyLike_RejectsUnknownActionBeforeStore(t *testing.T) {
	repo := &mockThoughtRepo{}
	svc := NewThoughtService(zap.NewNop(), repo)

	_, err := svc.ApplyLike(context.Background(), "t1", "toggle")
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
	if repo.heartsCalls != 0 {
		t.Fatalf("expected no store call, got %d", repo.heartsCalls)
	}
}
