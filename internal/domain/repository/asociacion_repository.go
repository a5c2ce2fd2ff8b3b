package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// AsociacionRepository define el puerto de persistencia para Asociacion.
type AsociacionRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Asociacion, error)
}
