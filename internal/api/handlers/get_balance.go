package handlers

import (
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/labstack/echo/v4"
)

func GetBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.API.GET("/tokens/:chain/:address/erc20/balance/:wallet", getBalanceHandler(s))
}

func getBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		chainID, err := api.ChainParam(c)
		if err != nil {
			return err
		}
		token, err := api.AddressParam(c, "address")
		if err != nil {
			return err
		}
		wallet, err := api.AddressParam(c, "wallet")
		if err != nil {
			return err
		}

		res, err := s.Tokens.BalanceOf(chainContext(c), chainID, token, wallet)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	}
}
