package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Skyenought/expressgen/internal/command"
)

var forceRepository bool

var repositoryCmd = &cobra.Command{
	Use:     "repository [model]",
	Short:   "Gera a interface e a implementação Postgres do repositório de um model",
	Aliases: []string{"repo"},
	Args:    cobra.MaximumNArgs(1),
	RunE: run(func(env *command.Env, args []string) error {
		return command.Repository(env, firstArg(args), forceRepository)
	}),
}

func init() {
	rootCmd.AddCommand(repositoryCmd)
	repositoryCmd.Flags().BoolVarP(&forceRepository, "force", "F", false, "sobrescreve os arquivos sem perguntar")
}
