package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ repository.PeticionOracionRepository = (*PeticionOracionRepo)(nil)

// PeticionOracionRepo implementación del puerto PeticionOracionRepository sobre PostgreSQL.
type PeticionOracionRepo struct {
	q Querier
}

// NewPeticionOracionRepository construye el adaptador de persistencia para peticiones de oración.
func NewPeticionOracionRepository(q Querier) *PeticionOracionRepo {
	return &PeticionOracionRepo{q: q}
}

// Create persiste una nueva petición de oración.
func (r *PeticionOracionRepo) Create(ctx context.Context, p *entity.PeticionOracion) error {
	query := `
		INSERT INTO peticiones_oracion (id, miembro_id, texto, estado, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, p.ID, p.MiembroID, p.Texto, p.Estado, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert peticion oracion: %w", err)
	}
	return nil
}

// ListByMiembro lista las peticiones de un miembro, recientes primero.
func (r *PeticionOracionRepo) ListByMiembro(ctx context.Context, miembroID string) ([]*entity.PeticionOracion, error) {
	query := `
		SELECT id, miembro_id, texto, estado, created_at
		FROM peticiones_oracion WHERE miembro_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, miembroID)
	if err != nil {
		return nil, fmt.Errorf("list peticiones oracion: %w", err)
	}
	defer rows.Close()
	var list []*entity.PeticionOracion
	for rows.Next() {
		var p entity.PeticionOracion
		if err := rows.Scan(&p.ID, &p.MiembroID, &p.Texto, &p.Estado, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan peticion oracion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
