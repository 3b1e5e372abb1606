package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/Mohsinsiddi/tokenapi/internal/api/router"
	"github.com/Mohsinsiddi/tokenapi/internal/config"
	"github.com/Mohsinsiddi/tokenapi/internal/contract"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP API on the configured listen address (default :3000).

Every chain in the config is registered at startup; requests for any other
chain id fail with 404.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newServer(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return runServer(s, cfg.Server)
	},
}

// newServer wires the registry, the ERC20 facade and the router.
func newServer(ctx context.Context, c *config.Config) (*api.Server, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tokenABI, err := contract.LoadERC20ABI(c.ERC20ABIPath)
	if err != nil {
		return nil, err
	}

	key, err := defaultSigningKey(c.Signer)
	if err != nil {
		return nil, err
	}

	chains, err := newRegistry(ctx, c, nil)
	if err != nil {
		return nil, err
	}
	if chains.Len() == 0 {
		log.Warn().Msg("No chains configured; set " + config.EnvLocalhostRPC + " or add chains to the config file")
	}

	facade := erc20.NewFacade(contract.NewReader(chains), contract.NewWriter(chains), chains, tokenABI)

	s := api.NewServer(c.Server, chains, facade, key)
	router.Init(s)

	if key != "" {
		if addr, err := wallet.AddressOf(key); err == nil {
			log.Info().Str("address", addr.Hex()).Msg("Default signer configured")
		}
	}
	return s, nil
}

// runServer serves until SIGINT or SIGTERM, then shuts down gracefully.
func runServer(s *api.Server, sc config.Server) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errc:
		s.Shutdown(context.Background())
		return err
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeoutDuration())
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		return errors.Errorf("graceful shutdown failed: %v", errs)
	}
	log.Info().Msg("Graceful shutdown completed")
	return nil
}
