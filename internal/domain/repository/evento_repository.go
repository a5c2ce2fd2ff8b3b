package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// EventoRepository define el puerto de persistencia para Evento.
type EventoRepository interface {
	Create(ctx context.Context, e *entity.Evento) error
	ListByIglesia(ctx context.Context, iglesiaID string) ([]*entity.Evento, error)
}
