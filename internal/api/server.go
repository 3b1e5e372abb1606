package api

import (
	"context"
	"math/big"
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/config"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// TokenService is the ERC20 facade as the handlers use it.
type TokenService interface {
	Token(ctx context.Context, chainID int64, token string) (*erc20.Token, error)
	Describe(ctx context.Context, chainID int64, token string) (*erc20.TokenDescriptor, error)
	BalanceOf(ctx context.Context, chainID int64, token, owner string) (*erc20.AmountPair, error)
	Allowance(ctx context.Context, chainID int64, token, owner, spender string) (*erc20.AmountPair, error)
	Approve(ctx context.Context, chainID int64, token, spender string, amount *big.Int, signingKey string) (*erc20.TxResult, error)
	Transfer(ctx context.Context, chainID int64, token, from, to string, amount *big.Int, signingKey string) (*erc20.TxResult, error)
}

// Router holds the route groups. It is filled by router.Init.
type Router struct {
	Routes []*echo.Route
	Root   *echo.Group
	API    *echo.Group
}

// Server keeps the dependencies shared by all handlers.
type Server struct {
	// initialized with router.Init(s)
	Echo   *echo.Echo
	Router *Router

	Config config.Server
	Chains *chain.Registry
	Tokens TokenService

	// DefaultSigningKey signs write requests that carry no key. May be empty.
	DefaultSigningKey string
}

// NewServer creates a Server. Call router.Init before Start.
func NewServer(cfg config.Server, chains *chain.Registry, tokens TokenService, defaultKey string) *Server {
	return &Server{
		Config:            cfg,
		Chains:            chains,
		Tokens:            tokens,
		DefaultSigningKey: defaultKey,
	}
}

// Ready reports whether every component is initialized.
func (s *Server) Ready() bool {
	return s.Echo != nil && s.Router != nil && s.Chains != nil && s.Tokens != nil
}

// Start listens on the configured address and blocks until the server stops.
func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	log.Info().
		Str("listen_address", s.Config.ListenAddress).
		Int("chains", s.Chains.Len()).
		Msg("Starting HTTP server")

	if err := s.Echo.Start(s.Config.ListenAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to start echo server")
	}
	return nil
}

// Shutdown stops the HTTP server and closes the chain clients.
func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")
		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Chains != nil {
		log.Debug().Msg("Closing chain clients")
		s.Chains.Close()
	}

	return errs
}

// SigningKey returns requested, or the default key when requested is empty.
func (s *Server) SigningKey(requested string) string {
	if requested != "" {
		return requested
	}
	return s.DefaultSigningKey
}
