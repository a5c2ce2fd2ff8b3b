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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioCols = `id, nombre, apellidos, email, telefono, password_hash, rol,
	pastor_id, secretario_id, miembro_id, iglesia_id, asociacion_id, created_at, updated_at`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. El email tiene constraint única; la
// violación se traduce a domain.ErrEmailRegistrado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Nombre, u.Apellidos, u.Email, u.Telefono, u.PasswordHash, u.Rol,
		u.PastorID, u.SecretarioID, u.MiembroID, u.IglesiaID, u.AsociacionID,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailRegistrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get usuario by id")
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, email), "get usuario by email")
}

// GetByPastorID obtiene el usuario enlazado a un perfil de pastor. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByPastorID(ctx context.Context, pastorID string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE pastor_id = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, pastorID), "get usuario by pastor")
}

// GetByMiembroID obtiene el usuario enlazado a un perfil de miembro. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByMiembroID(ctx context.Context, miembroID string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios WHERE miembro_id = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, miembroID), "get usuario by miembro")
}

// List devuelve todos los usuarios ordenados por fecha de creación descendente.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := scanUsuario(rows, &u); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountByRol agrega el total de usuarios por rol (GROUP BY rol).
func (r *UsuarioRepo) CountByRol(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT rol, COUNT(*) FROM usuarios GROUP BY rol`)
	if err != nil {
		return nil, fmt.Errorf("count usuarios by rol: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var rol string
		var n int
		if err := rows.Scan(&rol, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[rol] = n
	}
	return counts, rows.Err()
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	if err := scanUsuario(row, &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func scanUsuario(row pgx.Row, u *entity.Usuario) error {
	return row.Scan(
		&u.ID, &u.Nombre, &u.Apellidos, &u.Email, &u.Telefono, &u.PasswordHash, &u.Rol,
		&u.PastorID, &u.SecretarioID, &u.MiembroID, &u.IglesiaID, &u.AsociacionID,
		&u.CreatedAt, &u.UpdatedAt,
	)
}
