package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Skyenought/expressgen/internal/command"
)

var routesCmd = &cobra.Command{
	Use:     "routes",
	Aliases: []string{"ls-routes"},
	Short:   "Lista as rotas registradas nos arquivos de rota",
	Long: `Percorre src/api/routes/<versão>/*.router.ts e mostra método, path,
middlewares e controller de cada rota registrada.`,
	Args: cobra.NoArgs,
	RunE: run(func(env *command.Env, _ []string) error {
		return command.ListRoutes(env)
	}),
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
