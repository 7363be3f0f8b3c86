package main

import (
	"fmt"
	"os"

	"github.com/estantelabs/estante/internal/catalog"
	"github.com/estantelabs/estante/internal/cli"
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/tui/viewmodel"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	var (
		genre      string
		bookType   string
		level      string
		output     string
		noFallback bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Listar o catálogo de livros",
		Long:  `Busca o catálogo no serviço e lista os livros, com filtros opcionais por gênero, tipo e nível.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			books, err := fetchBooks(ctx, newGateway(cfg), cfg.Fallback && !noFallback)
			if err != nil {
				return err
			}

			criteria := model.FilterCriteria{Genre: genre, Type: bookType, Level: level}
			filtered := catalog.Filter(books, criteria)

			if output == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(filtered)
			}

			if len(filtered) == 0 {
				fmt.Println(cli.FormatInfo("Nenhum livro encontrado. Tente ajustar os filtros."))
				return nil
			}

			rows := make([][]string, 0, len(filtered))
			for _, card := range viewmodel.NewBookCards(filtered) {
				rows = append(rows, []string{card.ID, card.Title, card.Author, card.Genre, card.Type, card.Level, card.Year})
			}

			fmt.Println(cli.FormatTitle("Catálogo"))
			fmt.Println(cli.RenderTable([]string{"ID", "Título", "Autor", "Gênero", "Tipo", "Nível", "Ano"}, rows))
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d livros encontrados", len(filtered))))
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genero", "", "filter by genre")
	cmd.Flags().StringVar(&bookType, "tipo", "", "filter by type (ficcao, nao_ficcao)")
	cmd.Flags().StringVar(&level, "nivel", "", "filter by reading level (iniciante, intermediario, avancado)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, json)")
	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "fail instead of listing the bundled collection when the service is down")

	return cmd
}
