package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// PastorRepository define el puerto de persistencia para Pastor.
type PastorRepository interface {
	Create(ctx context.Context, p *entity.Pastor) error
	GetByID(ctx context.Context, id string) (*entity.Pastor, error)
}
