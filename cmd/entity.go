package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Skyenought/expressgen/internal/command"
)

var forceEntity bool

var entityCmd = &cobra.Command{
	Use:   "entity [model]",
	Short: "Gera a entity de um model do schema.prisma",
	Args:  cobra.MaximumNArgs(1),
	RunE: run(func(env *command.Env, args []string) error {
		return command.Entity(env, firstArg(args), forceEntity)
	}),
}

func init() {
	rootCmd.AddCommand(entityCmd)
	entityCmd.Flags().BoolVarP(&forceEntity, "force", "F", false, "sobrescreve a entity sem perguntar")
}
