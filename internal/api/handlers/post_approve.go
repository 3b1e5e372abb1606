package handlers

import (
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/labstack/echo/v4"
)

// ApproveRequest is the body of POST .../erc20/approve.
type ApproveRequest struct {
	To         string       `json:"to"`
	Amount     erc20.Amount `json:"amount"`
	PrivateKey string       `json:"privateKey,omitempty"`
}

func PostApproveRoute(s *api.Server) *echo.Route {
	return s.Router.API.POST("/tokens/:chain/:address/erc20/approve", postApproveHandler(s))
}

func postApproveHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		chainID, err := api.ChainParam(c)
		if err != nil {
			return err
		}
		token, err := api.AddressParam(c, "address")
		if err != nil {
			return err
		}

		var body ApproveRequest
		if err := api.BindBody(c, &body); err != nil {
			return err
		}
		if err := api.ValidateAddress("to", body.To); err != nil {
			return err
		}
		if err := api.RequireAmount(body.Amount); err != nil {
			return err
		}

		res, err := s.Tokens.Approve(chainContext(c), chainID, token, body.To, body.Amount.Int, s.SigningKey(body.PrivateKey))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	}
}
