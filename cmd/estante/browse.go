package main

import (
	"github.com/estantelabs/estante/internal/config"
	"github.com/estantelabs/estante/internal/store"
	"github.com/estantelabs/estante/internal/tui"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	var (
		noFallback bool
		topN       int
		exportDir  string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Navegar pelo catálogo interativamente",
		Long: `Abre a interface interativa: catálogo com filtros, estatísticas com
gráficos, recomendações por perfil e formulário de perfil de leitura.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fallback := cfg.Fallback && !noFallback
			if topN <= 0 {
				topN = cfg.TopN
			}
			if exportDir == "" {
				exportDir = cfg.ExportDir
			}

			return tui.Run(cmd.Context(),
				tui.WithGateway(newGateway(cfg)),
				tui.WithStore(store.New()),
				tui.WithFallback(fallback),
				tui.WithTopN(topN),
				tui.WithExportDir(config.ExpandPath(exportDir)),
			)
		},
	}

	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "fail instead of showing the bundled collection when the service is down")
	cmd.Flags().IntVar(&topN, "top-n", 0, "number of recommendations to request (default 6)")
	cmd.Flags().StringVar(&exportDir, "export-dir", "", "directory for exported charts")

	return cmd
}
