package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ repository.CitaVisitaRepository = (*CitaVisitaRepo)(nil)

// CitaVisitaRepo implementación del puerto CitaVisitaRepository sobre PostgreSQL.
type CitaVisitaRepo struct {
	q Querier
}

// NewCitaVisitaRepository construye el adaptador de persistencia para citas de visita.
func NewCitaVisitaRepository(q Querier) *CitaVisitaRepo {
	return &CitaVisitaRepo{q: q}
}

// Create persiste una nueva cita de visita.
func (r *CitaVisitaRepo) Create(ctx context.Context, c *entity.CitaVisita) error {
	query := `
		INSERT INTO citas_visita (id, miembro_id, motivo, fecha_propuesta, estado, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, c.ID, c.MiembroID, c.Motivo, c.FechaPropuesta, c.Estado, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert cita visita: %w", err)
	}
	return nil
}

// ListByMiembro lista las citas de un miembro, próximas primero.
func (r *CitaVisitaRepo) ListByMiembro(ctx context.Context, miembroID string) ([]*entity.CitaVisita, error) {
	query := `
		SELECT id, miembro_id, motivo, fecha_propuesta, estado, created_at
		FROM citas_visita WHERE miembro_id = $1 ORDER BY fecha_propuesta DESC`
	rows, err := r.q.Query(ctx, query, miembroID)
	if err != nil {
		return nil, fmt.Errorf("list citas visita: %w", err)
	}
	defer rows.Close()
	var list []*entity.CitaVisita
	for rows.Next() {
		var c entity.CitaVisita
		if err := rows.Scan(&c.ID, &c.MiembroID, &c.Motivo, &c.FechaPropuesta, &c.Estado, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cita visita: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
