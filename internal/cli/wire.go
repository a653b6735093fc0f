// Package cli implements the operator command line for the procurement service.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_tracker/internal/core/ports/services"
	"github.com/SscSPs/procurement_tracker/internal/core/services"
	"github.com/SscSPs/procurement_tracker/internal/notifications"
	"github.com/SscSPs/procurement_tracker/internal/platform/config"
	"github.com/SscSPs/procurement_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/procurement_tracker/pkg/database"
	"github.com/spf13/cobra"
)

// Operator commands act as an administrator identified by --actor.
const actorFlag = "actor"

func logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// withServices builds the service container against the configured database and
// releases it once fn returns. Events are written to the log only.
func withServices(ctx context.Context, fn func(*portssvc.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	log := logger()
	dispatcher := notifications.NewDispatcher(log, 64, 0, notifications.NewLogSink(log))
	defer func() { _ = dispatcher.Close(ctx) }()

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool, nil, 0), dispatcher)
	return fn(container)
}

func operator(cmd *cobra.Command) (domain.Actor, error) {
	id, _ := cmd.Flags().GetString(actorFlag)
	if id == "" {
		return domain.Actor{}, fmt.Errorf("--%s flag is required", actorFlag)
	}
	return domain.Actor{ID: id, Role: domain.RoleAdministrator}, nil
}
