package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/iglesias-api/internal/domain"
	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ repository.IglesiaRepository = (*IglesiaRepo)(nil)

const iglesiaCols = `id, codigo, nombre, direccion, telefono, distrito_id, pastor_id, created_at, updated_at`

// IglesiaRepo implementación del puerto IglesiaRepository sobre PostgreSQL (usable con pool o tx).
type IglesiaRepo struct {
	q Querier
}

// NewIglesiaRepository construye el adaptador de persistencia para iglesias. Pasar pool o tx (Querier).
func NewIglesiaRepository(q Querier) *IglesiaRepo {
	return &IglesiaRepo{q: q}
}

// Create persiste una nueva iglesia. La violación de unicidad del código se
// traduce a domain.ErrCodigoRegistrado (también cierra la carrera entre dos
// creates concurrentes con el mismo código).
func (r *IglesiaRepo) Create(ctx context.Context, i *entity.Iglesia) error {
	query := `
		INSERT INTO iglesias (` + iglesiaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Codigo, i.Nombre, i.Direccion, i.Telefono, i.DistritoID, i.PastorID,
		i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoRegistrado
		}
		return fmt.Errorf("insert iglesia: %w", err)
	}
	return nil
}

// GetByID obtiene una iglesia por ID. (nil, nil) si no existe.
func (r *IglesiaRepo) GetByID(ctx context.Context, id string) (*entity.Iglesia, error) {
	query := `SELECT ` + iglesiaCols + ` FROM iglesias WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get iglesia by id")
}

// GetByCodigo obtiene una iglesia por su código único. (nil, nil) si no existe.
func (r *IglesiaRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Iglesia, error) {
	query := `SELECT ` + iglesiaCols + ` FROM iglesias WHERE codigo = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, codigo), "get iglesia by codigo")
}

// ListConConteos lista todas las iglesias por nombre con conteos de miembros y eventos.
func (r *IglesiaRepo) ListConConteos(ctx context.Context) ([]repository.IglesiaConteos, error) {
	query := `
		SELECT i.id, i.codigo, i.nombre, i.direccion, i.telefono, i.distrito_id, i.pastor_id,
		       i.created_at, i.updated_at,
		       (SELECT COUNT(*) FROM miembros m WHERE m.iglesia_id = i.id) AS miembros,
		       (SELECT COUNT(*) FROM eventos e WHERE e.iglesia_id = i.id) AS eventos
		FROM iglesias i
		ORDER BY i.nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list iglesias: %w", err)
	}
	defer rows.Close()
	var list []repository.IglesiaConteos
	for rows.Next() {
		var ic repository.IglesiaConteos
		i := &ic.Iglesia
		if err := rows.Scan(
			&i.ID, &i.Codigo, &i.Nombre, &i.Direccion, &i.Telefono, &i.DistritoID, &i.PastorID,
			&i.CreatedAt, &i.UpdatedAt, &ic.Miembros, &ic.Eventos,
		); err != nil {
			return nil, fmt.Errorf("scan iglesia: %w", err)
		}
		list = append(list, ic)
	}
	return list, rows.Err()
}

// ListByDistrito lista las iglesias de un distrito.
func (r *IglesiaRepo) ListByDistrito(ctx context.Context, distritoID string) ([]*entity.Iglesia, error) {
	query := `SELECT ` + iglesiaCols + ` FROM iglesias WHERE distrito_id = $1 ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query, distritoID)
	if err != nil {
		return nil, fmt.Errorf("list iglesias by distrito: %w", err)
	}
	defer rows.Close()
	var list []*entity.Iglesia
	for rows.Next() {
		var i entity.Iglesia
		if err := scanIglesia(rows, &i); err != nil {
			return nil, fmt.Errorf("scan iglesia: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Update actualiza todos los campos mutables de la iglesia.
func (r *IglesiaRepo) Update(ctx context.Context, i *entity.Iglesia) error {
	query := `
		UPDATE iglesias
		SET codigo = $2, nombre = $3, direccion = $4, telefono = $5,
		    distrito_id = $6, pastor_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.Codigo, i.Nombre, i.Direccion, i.Telefono, i.DistritoID, i.PastorID, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodigoRegistrado
		}
		return fmt.Errorf("update iglesia: %w", err)
	}
	return nil
}

// Delete elimina una iglesia por ID.
func (r *IglesiaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM iglesias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete iglesia: %w", err)
	}
	return nil
}

// CountDependencias devuelve cuántos miembros y eventos referencian la iglesia.
func (r *IglesiaRepo) CountDependencias(ctx context.Context, id string) (miembros, eventos int, err error) {
	query := `
		SELECT (SELECT COUNT(*) FROM miembros WHERE iglesia_id = $1),
		       (SELECT COUNT(*) FROM eventos WHERE iglesia_id = $1)`
	if err := r.q.QueryRow(ctx, query, id).Scan(&miembros, &eventos); err != nil {
		return 0, 0, fmt.Errorf("count dependencias iglesia: %w", err)
	}
	return miembros, eventos, nil
}

func (r *IglesiaRepo) scanOne(row pgx.Row, op string) (*entity.Iglesia, error) {
	var i entity.Iglesia
	if err := scanIglesia(row, &i); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &i, nil
}

func scanIglesia(row pgx.Row, i *entity.Iglesia) error {
	return row.Scan(
		&i.ID, &i.Codigo, &i.Nombre, &i.Direccion, &i.Telefono, &i.DistritoID, &i.PastorID,
		&i.CreatedAt, &i.UpdatedAt,
	)
}
