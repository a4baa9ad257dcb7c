package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/reactornav/internal/database"
)

// ResetCatalog wipes the catalog and seeds the defaults again.
type ResetCatalog struct{}

// MaintenanceService houses destructive/ops actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes all catalog data and reseeds it. The schema is kept so the
// app can continue running.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		for _, t := range []string{"items", "sections"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return database.SeedDefaults(ctx, s.DB)
}
