package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Skyenought/expressgen/internal/command"
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Injeta um repositório em um use case existente",
	Args:  cobra.NoArgs,
	RunE: run(func(env *command.Env, _ []string) error {
		return command.Inject(env)
	}),
}

func init() {
	rootCmd.AddCommand(injectCmd)
}
