package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Skyenought/expressgen/internal/command"
	"github.com/Skyenought/expressgen/internal/config"
	"github.com/Skyenought/expressgen/internal/logger"
	"github.com/Skyenought/expressgen/internal/prompt"
	"github.com/Skyenought/expressgen/internal/ui"
)

var (
	projectDir string
	configFile string
	verbose    bool
)

// errReported marks an error whose message was already shown to the operator.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "expressgen",
	Short: "Gerador de código para APIs Express + Prisma em camadas",
	Long: `expressgen gera entities, repositórios, use cases e rotas de um projeto
Express/Prisma e injeta dependências em use cases já gerados.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "diretório raiz do projeto")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "arquivo de configuração (padrão: <dir>/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "habilita logs de depuração")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "%s %v\n", ui.GlyphFail, err)
		}
		os.Exit(1)
	}
}

// newEnv resolves the configuration and wires the collaborators of a generator.
func newEnv() (*command.Env, error) {
	root, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, errors.Wrap(err, "resolve project dir")
	}
	cfg, err := config.Load(root, configFile)
	if err != nil {
		return nil, err
	}
	logCfg := cfg.LoggerConfig()
	if verbose {
		logCfg.Level = "debug"
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, err
	}
	log.Debugf("project root %s, schema %s, source dir %s", cfg.Root, cfg.SchemaPath(), cfg.SourceDir)

	return &command.Env{
		Config: cfg,
		Log:    log,
		UI:     ui.New(os.Stdout),
		Prompt: prompt.New(os.Stdin, os.Stdout),
	}, nil
}

// run adapts a generator to cobra. Cancellation by the operator is not a failure and
// failures the generator already printed are not printed again.
func run(generate func(env *command.Env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		err = generate(env, args)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, command.ErrCancelled):
			return nil
		case errors.Is(err, prompt.ErrInterrupted):
			env.UI.Fail("Operação cancelada.")
			return nil
		case command.Reported(err):
			return errReported
		default:
			return err
		}
	}
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
