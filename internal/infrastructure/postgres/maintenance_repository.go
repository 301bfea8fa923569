package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo operaciones administrativas sobre PostgreSQL.
type MaintenanceRepo struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository construye el adaptador de mantenimiento.
func NewMaintenanceRepository(pool *pgxpool.Pool) *MaintenanceRepo {
	return &MaintenanceRepo{pool: pool}
}

// Reset borra los datos operativos en una sola transacción. El orden importa
// por las foreign keys: hijos antes que padres. Usuarios y configuración de
// empresa se conservan.
func (r *MaintenanceRepo) Reset() error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, table := range []string{"sale_items", "sales", "products", "customers", "categories"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
