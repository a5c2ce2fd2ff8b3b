package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ repository.PastorRepository = (*PastorRepo)(nil)

// PastorRepo implementación del puerto PastorRepository sobre PostgreSQL (usable con pool o tx).
type PastorRepo struct {
	q Querier
}

// NewPastorRepository construye el adaptador de persistencia para pastores. Pasar pool o tx (Querier).
func NewPastorRepository(q Querier) *PastorRepo {
	return &PastorRepo{q: q}
}

// Create persiste un nuevo perfil de pastor.
func (r *PastorRepo) Create(ctx context.Context, p *entity.Pastor) error {
	query := `
		INSERT INTO pastores (id, distrito_id, asociacion_id, fecha_ordenacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.DistritoID, p.AsociacionID, p.FechaOrdenacion, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pastor: %w", err)
	}
	return nil
}

// GetByID obtiene un pastor por ID. (nil, nil) si no existe.
func (r *PastorRepo) GetByID(ctx context.Context, id string) (*entity.Pastor, error) {
	query := `
		SELECT id, distrito_id, asociacion_id, fecha_ordenacion, created_at, updated_at
		FROM pastores WHERE id = $1`
	var p entity.Pastor
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.DistritoID, &p.AsociacionID, &p.FechaOrdenacion, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pastor: %w", err)
	}
	return &p, nil
}
