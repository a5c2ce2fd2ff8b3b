package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// MiembroRepository define el puerto de persistencia para Miembro.
type MiembroRepository interface {
	Create(ctx context.Context, m *entity.Miembro) error
	GetByID(ctx context.Context, id string) (*entity.Miembro, error)
	ListByIglesia(ctx context.Context, iglesiaID string) ([]*entity.Miembro, error)
	// ListByDistrito agrega los miembros de todas las iglesias del distrito.
	ListByDistrito(ctx context.Context, distritoID string) ([]*entity.Miembro, error)
}
