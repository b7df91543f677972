package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"iconpack/internal/domain"
)

func importCmd() *cobra.Command {
	var (
		output  string
		subDirs bool
	)
	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Import one directory as a single collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := domain.ImportOptions{
				IncludeSubDirs: subDirs,
				Prefix:         prefix,
				GridWidth:      appCtx.Config.GridWidth,
				GridHeight:     appCtx.Config.GridHeight,
			}
			col, err := appCtx.Importer.ImportDirectory(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if output != "" {
				return appCtx.Store.Save(output, col)
			}
			b, err := json.MarshalIndent(col, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the collection to this file (default stdout)")
	cmd.Flags().BoolVar(&subDirs, "subdirs", true, "fold files from nested directories into the collection")
	return cmd
}
