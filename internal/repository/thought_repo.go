package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"thoughts-api/internal/domain"
)

// ErrHeartsFloor indica que el store rechazó un update que dejaría hearts negativo.
var ErrHeartsFloor = errors.New("hearts cannot drop below zero")

type ThoughtRepository interface {
	Create(ctx context.Context, thought domain.Thought) error
	ListRecent(ctx context.Context, limit int) ([]domain.Thought, error)
	AddHearts(ctx context.Context, id string, delta int) (domain.Thought, error)
}

type PgThoughtRepository struct {
	pool *pgxpool.Pool
}

func NewPgThoughtRepository(pool *pgxpool.Pool) *PgThoughtRepository {
	return &PgThoughtRepository{pool: pool}
}

func (r *PgThoughtRepository) Create(ctx context.Context, thought domain.Thought) error {
	const query = `
		INSERT INTO thoughts (id, message, hearts, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		thought.ID,
		thought.Message,
		thought.Hearts,
		thought.CreatedAt,
	)
	return err
}

func (r *PgThoughtRepository) ListRecent(ctx context.Context, limit int) ([]domain.Thought, error) {
	const query = `
		SELECT id, message, hearts, created_at
		FROM thoughts
		ORDER BY created_at DESC, id
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var thoughts []domain.Thought
	for rows.Next() {
		var t domain.Thought
		if err = rows.Scan(&t.ID, &t.Message, &t.Hearts, &t.CreatedAt); err != nil {
			return nil, err
		}
		thoughts = append(thoughts, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return thoughts, nil
}

// AddHearts aplica el delta en un solo UPDATE atómico. La condición
// `hearts + delta >= 0` hace cumplir el piso en el store: removes
// concurrentes nunca dejan el contador negativo.
func (r *PgThoughtRepository) AddHearts(ctx context.Context, id string, delta int) (domain.Thought, error) {
	const query = `
		UPDATE thoughts
		SET hearts = hearts + $2
		WHERE id = $1 AND hearts + $2 >= 0
		RETURNING id, message, hearts, created_at
	`

	var t domain.Thought
	err := r.pool.QueryRow(ctx, query, id, delta).Scan(&t.ID, &t.Message, &t.Hearts, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Sin fila actualizada: o el id no existe, o el piso rechazó el update.
		var exists bool
		const existsQuery = `SELECT EXISTS (SELECT 1 FROM thoughts WHERE id = $1)`
		if exErr := r.pool.QueryRow(ctx, existsQuery, id).Scan(&exists); exErr != nil {
			return domain.Thought{}, exErr
		}
		if exists {
			return domain.Thought{}, ErrHeartsFloor
		}
		return domain.Thought{}, pgx.ErrNoRows
	}
	if err != nil {
		return domain.Thought{}, err
	}
	return t, nil
}
