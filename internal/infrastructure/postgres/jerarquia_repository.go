package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var (
	_ repository.DistritoRepository   = (*DistritoRepo)(nil)
	_ repository.AsociacionRepository = (*AsociacionRepo)(nil)
)

// DistritoRepo implementación del puerto DistritoRepository sobre PostgreSQL.
type DistritoRepo struct {
	q Querier
}

// NewDistritoRepository construye el adaptador de persistencia para distritos.
func NewDistritoRepository(q Querier) *DistritoRepo {
	return &DistritoRepo{q: q}
}

// GetByID obtiene un distrito por ID. (nil, nil) si no existe.
func (r *DistritoRepo) GetByID(ctx context.Context, id string) (*entity.Distrito, error) {
	query := `SELECT id, nombre, asociacion_id, created_at, updated_at FROM distritos WHERE id = $1`
	var d entity.Distrito
	err := r.q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Nombre, &d.AsociacionID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get distrito: %w", err)
	}
	return &d, nil
}

// AsociacionRepo implementación del puerto AsociacionRepository sobre PostgreSQL.
type AsociacionRepo struct {
	q Querier
}

// NewAsociacionRepository construye el adaptador de persistencia para asociaciones.
func NewAsociacionRepository(q Querier) *AsociacionRepo {
	return &AsociacionRepo{q: q}
}

// GetByID obtiene una asociación por ID. (nil, nil) si no existe.
func (r *AsociacionRepo) GetByID(ctx context.Context, id string) (*entity.Asociacion, error) {
	query := `SELECT id, nombre, created_at, updated_at FROM asociaciones WHERE id = $1`
	var a entity.Asociacion
	err := r.q.QueryRow(ctx, query, id).Scan(&a.ID, &a.Nombre, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asociacion: %w", err)
	}
	return &a, nil
}
