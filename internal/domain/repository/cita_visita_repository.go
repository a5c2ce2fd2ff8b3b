package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// CitaVisitaRepository define el puerto de persistencia para CitaVisita.
type CitaVisitaRepository interface {
	Create(ctx context.Context, c *entity.CitaVisita) error
	ListByMiembro(ctx context.Context, miembroID string) ([]*entity.CitaVisita, error)
}
