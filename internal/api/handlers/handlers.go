package handlers

import (
	"context"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/labstack/echo/v4"
)

// AttachAllRoutes registers every route on s.Router.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		GetHealthyRoute(s),
		GetChainsRoute(s),
		GetTokenRoute(s),
		GetERC20Route(s),
		GetBalanceRoute(s),
		GetAllowanceRoute(s),
		PostApproveRoute(s),
		PostTransferRoute(s),
	}
}

// chainContext keeps the request's values but not its cancellation: a
// client that disconnects does not abort a chain call already in flight.
func chainContext(c echo.Context) context.Context {
	return context.WithoutCancel(c.Request().Context())
}
