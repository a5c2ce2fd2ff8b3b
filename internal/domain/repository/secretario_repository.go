package repository

import (
	"context"

	"github.com/tu-usuario/iglesias-api/internal/domain/entity"
)

// SecretarioRepository define el puerto de persistencia para Secretario.
type SecretarioRepository interface {
	Create(ctx context.Context, s *entity.Secretario) error
	GetByID(ctx context.Context, id string) (*entity.Secretario, error)
}
