package commands

import (
	"github.com/spf13/cobra"

	"iconpack/internal/app"
)

var (
	prefix string
	grid   float64
	quiet  bool
	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "iconpack",
		Short:        "Import directories of SVG icons into keyed collections",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.ParseConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("grid") {
				cfg.GridWidth = grid
				cfg.GridHeight = grid
			}
			if quiet {
				cfg.Quiet = true
			}
			appCtx = app.NewWire(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&prefix, "prefix", "", "collection prefix / key namespace")
	root.PersistentFlags().Float64Var(&grid, "grid", 16, "default icon grid size")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-icon diagnostics")

	root.AddCommand(importCmd(), importTreeCmd())
	return root.Execute()
}
