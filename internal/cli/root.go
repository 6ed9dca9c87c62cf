package cli

import (
	"context"

	"github.com/Xenn-00/signatur-portal/internal/config"
	"github.com/Xenn-00/signatur-portal/internal/db"
	admin_repo "github.com/Xenn-00/signatur-portal/internal/repo/admin-repo"
	"github.com/spf13/cobra"
)

// Deps kapselt den Zugriff auf die Datenbank, damit die Befehle ohne Postgres testbar sind.
type Deps struct {
	// AdminStore öffnet das Admin-Repository. close gibt die Verbindung wieder frei.
	AdminStore func(ctx context.Context) (repo admin_repo.AdminRepoContract, close func(), err error)
	Migrate    func(ctx context.Context) error
}

// DefaultDeps verbindet sich über application.yaml mit Postgres.
func DefaultDeps() Deps {
	return Deps{
		AdminStore: func(ctx context.Context) (admin_repo.AdminRepoContract, func(), error) {
			cfg, err := config.LoadConfig()
			if err != nil {
				return nil, nil, err
			}
			pool, err := db.ConnectPool(ctx, cfg.DATABASE.Postgres.DSN)
			if err != nil {
				return nil, nil, err
			}
			return admin_repo.NewAdminRepo(pool), pool.Close, nil
		},
		Migrate: func(ctx context.Context) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			pool, err := db.ConnectPool(ctx, cfg.DATABASE.Postgres.DSN)
			if err != nil {
				return err
			}
			defer pool.Close()
			return db.Migrate(ctx, pool)
		},
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Verwaltung des Signatur-Portals",
		Long:          "adminctl richtet die Admin-Datenbank ein und legt Admin-Konten an.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(deps),
		newCreateAdminCmd(deps),
		newHashPasswordCmd(),
	)
	return root
}
