package main

import (
	"fmt"
	"log/slog"

	"github.com/estantelabs/estante/internal/catalog"
	"github.com/estantelabs/estante/internal/charts"
	"github.com/estantelabs/estante/internal/cli"
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Mostrar estatísticas da coleção",
		Long: `Exibe os totais da coleção e os gráficos de distribuição por gênero e
por nível de leitura. Com --local, os números são calculados a partir do
catálogo em vez de consultados no serviço.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gateway := newGateway(cfg)

			var (
				stats   model.Statistics
				isLocal bool
			)

			if local {
				books, err := fetchBooks(ctx, gateway, true)
				if err != nil {
					return err
				}
				stats = catalog.Aggregate(books)
				isLocal = true
			} else {
				remote, err := gateway.FetchStatistics(ctx)
				if err != nil {
					slog.Warn("statistics fetch failed, aggregating locally", "error", err)
					fmt.Println(cli.FormatWarning("Estatísticas indisponíveis; usando valores calculados localmente."))
					books, fetchErr := fetchBooks(ctx, gateway, true)
					if fetchErr != nil {
						return fetchErr
					}
					stats = catalog.Aggregate(books)
					isLocal = true
				} else {
					stats = *remote
				}
			}

			summary := viewmodel.NewStatsSummary(stats, isLocal)

			fmt.Println(cli.FormatTitle("Estatísticas da Coleção"))
			fmt.Println(cli.RenderTable(
				[]string{"Livros", "Gêneros", "Usuários", "Avaliações"},
				[][]string{{summary.TotalBooks, summary.TotalGenres, summary.TotalUsers, summary.TotalRatings}},
			))
			if isLocal {
				fmt.Println(cli.SubtleStyle.Render("Totais de usuários e avaliações só existem no serviço."))
			}

			manager := charts.NewManager(charts.WithWidth(70))
			manager.Update(stats)
			fmt.Println()
			fmt.Println(manager.View())

			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "aggregate statistics from the catalog instead of the service")

	return cmd
}
