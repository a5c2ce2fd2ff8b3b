package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// PeticionOracionRepository define el puerto de persistencia para PeticionOracion.
type PeticionOracionRepository interface {
	Create(ctx context.Context, p *entity.PeticionOracion) error
	ListByMiembro(ctx context.Context, miembroID string) ([]*entity.PeticionOracion, error)
}
