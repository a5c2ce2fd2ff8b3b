package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	GetByPastorID(ctx context.Context, pastorID string) (*entity.Usuario, error)
	GetByMiembroID(ctx context.Context, miembroID string) (*entity.Usuario, error)
	List(ctx context.Context) ([]*entity.Usuario, error)
	CountByRol(ctx context.Context) (map[string]int, error)
}
