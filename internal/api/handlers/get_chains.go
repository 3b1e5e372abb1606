package handlers

import (
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/labstack/echo/v4"
)

func GetChainsRoute(s *api.Server) *echo.Route {
	return s.Router.API.GET("/chains", getChainsHandler(s))
}

// RPC URLs are left out of the response; they often embed provider keys.
func getChainsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		endpoints := s.Chains.All()
		out := make([]chain.Chain, 0, len(endpoints))
		for _, ep := range endpoints {
			out = append(out, ep.Chain)
		}
		return c.JSON(http.StatusOK, out)
	}
}
