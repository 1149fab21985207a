package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load hubs from an export file; hubs whose slug exists are skipped",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer f.Close()

			var hubs []domain.Hub
			if err := json.NewDecoder(f).Decode(&hubs); err != nil {
				return fmt.Errorf("decode failed: %w", err)
			}

			repo, err := opts.openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			imported := 0
			for _, h := range hubs {
				_, err := repo.Restore(cmd.Context(), h)
				if errors.Is(err, domain.ErrSlugTaken) {
					cmd.PrintErrf("Skipping existing hub: %s\n", h.Slug)
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to import %s: %w", h.Slug, err)
				}
				imported++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d hubs\n", imported)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file to import")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
