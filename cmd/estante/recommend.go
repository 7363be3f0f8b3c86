package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/estantelabs/estante/internal/cli"
	"github.com/estantelabs/estante/internal/common"
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/tui/viewmodel"
	"github.com/estantelabs/estante/internal/validation"
	"github.com/spf13/cobra"
)

func recommendCmd() *cobra.Command {
	var (
		profile model.UserProfile
		topN    int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Gerar recomendações a partir de um perfil",
		Long: `Envia um perfil de leitura ao serviço e lista as recomendações
ranqueadas por similaridade.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if err := validation.Validate(profile); err != nil {
				return fmt.Errorf("%s", common.UserMessage(err))
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gateway := newGateway(cfg)

			if topN <= 0 {
				topN = cfg.TopN
			}

			recs, err := gateway.FetchRecommendations(ctx, profile.Query(topN))
			if err != nil {
				return fmt.Errorf("não foi possível gerar recomendações: %s", common.UserMessage(err))
			}

			// Registration is best-effort and never blocks the output.
			if regErr := gateway.RegisterProfile(ctx, profile); regErr != nil {
				slog.Debug("profile registration failed", "error", regErr)
			}

			fmt.Println(cli.FormatTitle("Recomendações para " + profile.Name))
			summary := viewmodel.NewProfileSummary(profile)
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Gênero: %s · Tipo: %s · Nível: %s",
				summary.Genre, summary.Type, summary.Level)))
			fmt.Println()

			if len(recs) == 0 {
				fmt.Println(cli.FormatInfo("Nenhuma recomendação encontrada para este perfil."))
				return nil
			}

			for i, card := range viewmodel.NewRecommendationCards(recs) {
				bar := strings.Repeat("█", card.ScorePercent/10)
				fmt.Printf("%2dº %s — %s\n", i+1, cli.TitleStyle.UnsetMargins().Render(card.Title), card.Author)
				fmt.Printf("    %s · %s · compatibilidade %s %s\n",
					card.Genre, card.Level,
					cli.SuccessStyle.Render(card.ScoreLabel),
					cli.InfoStyle.Render(bar),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&profile.Name, "nome", "", "reader name (required)")
	cmd.Flags().StringVar(&profile.Email, "email", "", "reader e-mail")
	cmd.Flags().IntVar(&profile.Age, "idade", 0, "reader age")
	cmd.Flags().StringVar(&profile.Genre, "genero", "", "favorite genre (required)")
	cmd.Flags().StringVar(&profile.Type, "tipo", "", "fiction type: ficcao or nao_ficcao (required)")
	cmd.Flags().StringVar(&profile.Level, "nivel", "", "reading level: iniciante, intermediario or avancado (required)")
	cmd.Flags().IntVar(&topN, "top-n", 0, "number of recommendations (default 6)")

	return cmd
}
