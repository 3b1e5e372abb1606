package handlers

import (
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/labstack/echo/v4"
)

func GetAllowanceRoute(s *api.Server) *echo.Route {
	return s.Router.API.GET("/tokens/:chain/:address/erc20/allowance/:owner/:spender", getAllowanceHandler(s))
}

func getAllowanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		chainID, err := api.ChainParam(c)
		if err != nil {
			return err
		}
		token, err := api.AddressParam(c, "address")
		if err != nil {
			return err
		}
		owner, err := api.AddressParam(c, "owner")
		if err != nil {
			return err
		}
		spender, err := api.AddressParam(c, "spender")
		if err != nil {
			return err
		}

		res, err := s.Tokens.Allowance(chainContext(c), chainID, token, owner, spender)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	}
}
