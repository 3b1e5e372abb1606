package cmd

import (
	"io"
	"os"
	"time"

	"github.com/Mohsinsiddi/tokenapi/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/tokenapi/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgPath string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "tokenapi",
	Short: "ERC20 read/write HTTP API",
	Long: `tokenapi serves ERC20 reads (metadata, balances, allowances) and writes
(approve, transferFrom) for every configured EVM chain over HTTP.

Configuration comes from an optional JSON or YAML file (--config or
TOKENAPI_CONFIG) and environment overrides such as RPC_ENDPOINT_LOCALHOST
and PRIVATE_KEY.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return errors.Wrap(err, "loading config")
		}
		if verbose {
			cfg.Logger.Level = zerolog.LevelDebugValue
		}
		return setupLogger(cmd.ErrOrStderr(), cfg.Logger)
	},
}

// Execute runs the root command.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute command")
		os.Exit(1)
	}
}

// setupLogger configures the global zerolog logger.
func setupLogger(out io.Writer, lc config.Logger) error {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		return errors.Wrapf(err, "logger.level %q", lc.Level)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if lc.PrettyPrint {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file, JSON or YAML (default: $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		serveCmd,
		chainsCmd,
		deployCmd,
		initCmd,
		keyCmd,
	)
}
