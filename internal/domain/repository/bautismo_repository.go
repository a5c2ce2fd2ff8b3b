package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// BautismoRepository define el puerto de persistencia para Bautismo.
type BautismoRepository interface {
	Create(ctx context.Context, b *entity.Bautismo) error
	GetByID(ctx context.Context, id string) (*entity.Bautismo, error)
	ListByPastor(ctx context.Context, pastorID string) ([]*entity.Bautismo, error)
}
