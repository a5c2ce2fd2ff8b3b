package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ repository.MiembroRepository = (*MiembroRepo)(nil)

const miembroCols = `id, iglesia_id, fecha_nacimiento, created_at, updated_at`

// MiembroRepo implementación del puerto MiembroRepository sobre PostgreSQL (usable con pool o tx).
type MiembroRepo struct {
	q Querier
}

// NewMiembroRepository construye el adaptador de persistencia para miembros. Pasar pool o tx (Querier).
func NewMiembroRepository(q Querier) *MiembroRepo {
	return &MiembroRepo{q: q}
}

// Create persiste un nuevo perfil de miembro.
func (r *MiembroRepo) Create(ctx context.Context, m *entity.Miembro) error {
	query := `INSERT INTO miembros (` + miembroCols + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, m.ID, m.IglesiaID, m.FechaNacimiento, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert miembro: %w", err)
	}
	return nil
}

// GetByID obtiene un miembro por ID. (nil, nil) si no existe.
func (r *MiembroRepo) GetByID(ctx context.Context, id string) (*entity.Miembro, error) {
	query := `SELECT ` + miembroCols + ` FROM miembros WHERE id = $1`
	var m entity.Miembro
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.IglesiaID, &m.FechaNacimiento, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get miembro: %w", err)
	}
	return &m, nil
}

// ListByIglesia lista los miembros de una iglesia.
func (r *MiembroRepo) ListByIglesia(ctx context.Context, iglesiaID string) ([]*entity.Miembro, error) {
	query := `SELECT ` + miembroCols + ` FROM miembros WHERE iglesia_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, iglesiaID)
}

// ListByDistrito agrega los miembros de todas las iglesias de un distrito.
func (r *MiembroRepo) ListByDistrito(ctx context.Context, distritoID string) ([]*entity.Miembro, error) {
	query := `
		SELECT m.id, m.iglesia_id, m.fecha_nacimiento, m.created_at, m.updated_at
		FROM miembros m
		JOIN iglesias i ON i.id = m.iglesia_id
		WHERE i.distrito_id = $1
		ORDER BY m.created_at ASC`
	return r.list(ctx, query, distritoID)
}

func (r *MiembroRepo) list(ctx context.Context, query string, arg any) ([]*entity.Miembro, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list miembros: %w", err)
	}
	defer rows.Close()
	var list []*entity.Miembro
	for rows.Next() {
		var m entity.Miembro
		if err := rows.Scan(&m.ID, &m.IglesiaID, &m.FechaNacimiento, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan miembro: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
