package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ repository.SecretarioRepository = (*SecretarioRepo)(nil)

// SecretarioRepo implementación del puerto SecretarioRepository sobre PostgreSQL (usable con pool o tx).
type SecretarioRepo struct {
	q Querier
}

// NewSecretarioRepository construye el adaptador de persistencia para secretarios. Pasar pool o tx (Querier).
func NewSecretarioRepository(q Querier) *SecretarioRepo {
	return &SecretarioRepo{q: q}
}

// Create persiste un nuevo perfil de secretario.
func (r *SecretarioRepo) Create(ctx context.Context, s *entity.Secretario) error {
	query := `INSERT INTO secretarios (id, created_at, updated_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, s.ID, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert secretario: %w", err)
	}
	return nil
}

// GetByID obtiene un secretario por ID. (nil, nil) si no existe.
func (r *SecretarioRepo) GetByID(ctx context.Context, id string) (*entity.Secretario, error) {
	query := `SELECT id, created_at, updated_at FROM secretarios WHERE id = $1`
	var s entity.Secretario
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get secretario: %w", err)
	}
	return &s, nil
}
