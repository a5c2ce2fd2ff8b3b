package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ repository.BautismoRepository = (*BautismoRepo)(nil)

const bautismoCols = `id, miembro_id, pastor_id, fecha, lugar, created_at`

// BautismoRepo implementación del puerto BautismoRepository sobre PostgreSQL (usable con pool o tx).
type BautismoRepo struct {
	q Querier
}

// NewBautismoRepository construye el adaptador de persistencia para bautismos. Pasar pool o tx (Querier).
func NewBautismoRepository(q Querier) *BautismoRepo {
	return &BautismoRepo{q: q}
}

// Create persiste un nuevo bautismo.
func (r *BautismoRepo) Create(ctx context.Context, b *entity.Bautismo) error {
	query := `INSERT INTO bautismos (` + bautismoCols + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, b.ID, b.MiembroID, b.PastorID, b.Fecha, b.Lugar, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bautismo: %w", err)
	}
	return nil
}

// GetByID obtiene un bautismo por ID. (nil, nil) si no existe.
func (r *BautismoRepo) GetByID(ctx context.Context, id string) (*entity.Bautismo, error) {
	query := `SELECT ` + bautismoCols + ` FROM bautismos WHERE id = $1`
	var b entity.Bautismo
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.MiembroID, &b.PastorID, &b.Fecha, &b.Lugar, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bautismo: %w", err)
	}
	return &b, nil
}

// ListByPastor lista los bautismos registrados por un pastor, recientes primero.
func (r *BautismoRepo) ListByPastor(ctx context.Context, pastorID string) ([]*entity.Bautismo, error) {
	query := `SELECT ` + bautismoCols + ` FROM bautismos WHERE pastor_id = $1 ORDER BY fecha DESC`
	rows, err := r.q.Query(ctx, query, pastorID)
	if err != nil {
		return nil, fmt.Errorf("list bautismos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bautismo
	for rows.Next() {
		var b entity.Bautismo
		if err := rows.Scan(&b.ID, &b.MiembroID, &b.PastorID, &b.Fecha, &b.Lugar, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bautismo: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
