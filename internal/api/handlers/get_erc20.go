package handlers

import (
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/labstack/echo/v4"
)

func GetERC20Route(s *api.Server) *echo.Route {
	return s.Router.API.GET("/tokens/:chain/:address/erc20", getERC20Handler(s))
}

func getERC20Handler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		chainID, err := api.ChainParam(c)
		if err != nil {
			return err
		}
		token, err := api.AddressParam(c, "address")
		if err != nil {
			return err
		}

		res, err := s.Tokens.Describe(chainContext(c), chainID, token)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	}
}
