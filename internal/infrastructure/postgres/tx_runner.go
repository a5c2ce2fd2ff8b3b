package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
	"github.com/tu-usuario/iglesias-api/internal/domain/repository"
)

var _ usecase.RegistroTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistro inicia una transacción con los repos que necesita el alta
// usuario+perfil y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunRegistro(ctx context.Context, fn func(
	usuarios repository.UsuarioRepository,
	pastores repository.PastorRepository,
	secretarios repository.SecretarioRepository,
	miembros repository.MiembroRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	usuarios := NewUsuarioRepository(tx)
	pastores := NewPastorRepository(tx)
	secretarios := NewSecretarioRepository(tx)
	miembros := NewMiembroRepository(tx)

	if err := fn(usuarios, pastores, secretarios, miembros); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
