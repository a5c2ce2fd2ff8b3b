package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// DistritoRepository define el puerto de persistencia para Distrito.
type DistritoRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Distrito, error)
}
