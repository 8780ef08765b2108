package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Skyenought/expressgen/internal/command"
)

var usecaseCmd = &cobra.Command{
	Use:     "usecase",
	Short:   "Cria um use case (DTO, use case, controller, index e validação)",
	Aliases: []string{"uc"},
	Args:    cobra.NoArgs,
	RunE: run(func(env *command.Env, _ []string) error {
		return command.UseCase(env)
	}),
}

func init() {
	rootCmd.AddCommand(usecaseCmd)
}
