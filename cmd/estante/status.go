package main

import (
	"fmt"
	"time"

	"github.com/estantelabs/estante/internal/cli"
	"github.com/estantelabs/estante/internal/common"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Verificar a conexão com o serviço",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gateway := newGateway(cfg)

			fmt.Println(cli.FormatInfo("Verificando " + cfg.APIURL + "..."))

			start := time.Now()
			if healthErr := gateway.CheckHealth(cmd.Context()); healthErr != nil {
				fmt.Println(cli.FormatError("Serviço indisponível: " + common.UserMessage(healthErr)))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Serviço online (%s)", time.Since(start).Round(time.Millisecond))))
			return nil
		},
	}
}
