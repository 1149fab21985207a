package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wadjakorntonsri/go-link-hub/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/go-link-hub/pkg/config"
)

type rootOptions struct {
	configFile string
	dbURL      string
}

// NewRootCmd builds the linkhub command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "linkhub",
		Short:        "Link hub maintenance tools",
		Long:         `Export, import and preview link hubs directly against the database.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file path")
	root.PersistentFlags().StringVar(&opts.dbURL, "db-url", "", "database URL (overrides DATABASE_URL)")

	root.AddCommand(newExportCmd(opts), newImportCmd(opts), newResolveCmd(opts))
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) openRepo() (*sqlite.SQLiteRepository, error) {
	url := o.dbURL
	if url == "" {
		cfg, err := config.Load(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		url = cfg.DatabaseURL
	}

	repo, err := sqlite.NewSQLiteRepository(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return repo, nil
}
