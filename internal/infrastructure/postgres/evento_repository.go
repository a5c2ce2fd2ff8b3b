package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

const eventoCols = `id, iglesia_id, nombre, descripcion, fecha_inicio, fecha_fin, lugar, creado_por_id, created_at`

// EventoRepo implementación del puerto EventoRepository sobre PostgreSQL (usable con pool o tx).
type EventoRepo struct {
	q Querier
}

// NewEventoRepository construye el adaptador de persistencia para eventos. Pasar pool o tx (Querier).
func NewEventoRepository(q Querier) *EventoRepo {
	return &EventoRepo{q: q}
}

// Create persiste un nuevo evento.
func (r *EventoRepo) Create(ctx context.Context, e *entity.Evento) error {
	query := `INSERT INTO eventos (` + eventoCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.IglesiaID, e.Nombre, e.Descripcion, e.FechaInicio, e.FechaFin, e.Lugar,
		e.CreadoPorID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert evento: %w", err)
	}
	return nil
}

// ListByIglesia lista los eventos de una iglesia, próximos primero.
func (r *EventoRepo) ListByIglesia(ctx context.Context, iglesiaID string) ([]*entity.Evento, error) {
	query := `SELECT ` + eventoCols + ` FROM eventos WHERE iglesia_id = $1 ORDER BY fecha_inicio DESC`
	rows, err := r.q.Query(ctx, query, iglesiaID)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Evento
	for rows.Next() {
		var e entity.Evento
		if err := rows.Scan(
			&e.ID, &e.IglesiaID, &e.Nombre, &e.Descripcion, &e.FechaInicio, &e.FechaFin,
			&e.Lugar, &e.CreadoPorID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
