package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// IglesiaConteos iglesia con sus conteos de dependencias, para listados.
type IglesiaConteos struct {
	Iglesia  entity.Iglesia
	Miembros int
	Eventos  int
}

// IglesiaRepository define el puerto de persistencia para Iglesia.
type IglesiaRepository interface {
	Create(ctx context.Context, i *entity.Iglesia) error
	GetByID(ctx context.Context, id string) (*entity.Iglesia, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Iglesia, error)
	// ListConConteos lista todas las iglesias ordenadas por nombre con los
	// conteos de miembros y eventos.
	ListConConteos(ctx context.Context) ([]IglesiaConteos, error)
	ListByDistrito(ctx context.Context, distritoID string) ([]*entity.Iglesia, error)
	Update(ctx context.Context, i *entity.Iglesia) error
	Delete(ctx context.Context, id string) error
	// CountDependencias devuelve cuántos miembros y eventos referencian la iglesia.
	CountDependencias(ctx context.Context, id string) (miembros, eventos int, err error)
}
