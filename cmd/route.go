package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Skyenought/expressgen/internal/command"
	"github.com/Skyenought/expressgen/internal/prompt"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Registra o controller de um use case no router do seu domínio",
	Args:  cobra.NoArgs,
	RunE: run(func(env *command.Env, _ []string) error {
		err := command.Route(env)
		if err == nil || errors.Is(err, command.ErrCancelled) || errors.Is(err, prompt.ErrInterrupted) || command.Reported(err) {
			return err
		}
		env.UI.Fail("Erro ao criar rota: %v", err)
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		return errReported
	}),
}

func init() {
	rootCmd.AddCommand(routeCmd)
}
