package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"iconpack/internal/domain"
)

func importTreeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "import-tree <root>",
		Short: "Import every qualifying directory under a root, one collection each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := domain.ImportOptions{
				Prefix:     prefix,
				GridWidth:  appCtx.Config.GridWidth,
				GridHeight: appCtx.Config.GridHeight,
			}
			cols, err := appCtx.Importer.ImportTree(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if err := appCtx.Store.SaveAll(output, cols); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d collection(s) to %s\n", len(cols), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "collections", "directory to write one <key>.json per collection")
	return cmd
}
