package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/estantelabs/estante/internal/cli"
	"github.com/estantelabs/estante/internal/model"
	"github.com/goccy/go-json"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		format     string
		outputPath string
		noFallback bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exportar o catálogo para um arquivo",
		Long:  `Busca o catálogo no serviço e grava todos os livros em CSV ou JSON.`,
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

			if outputPath == "" {
				outputPath = "catalogo." + format
			}

			file, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputPath, err)
			}
			defer func() {
				if closeErr := file.Close(); closeErr != nil {
					slog.Warn("failed to close export file", "error", closeErr)
				}
			}()

			bar := progressbar.NewOptions(len(books),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Exportando catálogo...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			switch format {
			case "csv":
				err = exportCSV(file, books, bar)
			case "json":
				err = exportJSON(file, books, bar)
			default:
				return fmt.Errorf("unsupported format: %s (use csv or json)", format)
			}
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d livros exportados para %s", len(books), outputPath)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format (csv, json)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: catalogo.<format>)")
	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "fail instead of exporting the bundled collection when the service is down")

	return cmd
}

func exportCSV(file *os.File, books []model.Book, bar *progressbar.ProgressBar) error {
	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"id", "titulo", "autor", "genero", "tipo", "nivel", "ano_publicacao", "descricao"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, b := range books {
		year := ""
		if b.Year.Known() {
			year = strconv.Itoa(int(b.Year))
		}
		record := []string{
			strconv.Itoa(b.ID),
			b.Title,
			b.Author,
			b.Genre,
			b.Type,
			b.Level,
			year,
			b.Description,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		_ = bar.Add(1)
	}

	return nil
}

func exportJSON(file *os.File, books []model.Book, bar *progressbar.ProgressBar) error {
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(books); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	_ = bar.Add(len(books))
	return nil
}
