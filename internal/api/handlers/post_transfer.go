package handlers

import (
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/labstack/echo/v4"
)

// TransferRequest is the body of POST .../erc20/transfer. PrivateKey
// defaults to the server's signing key. From, when absent, is the account of
// whichever key signs; a given From is kept even when the default key signs.
type TransferRequest struct {
	From       string       `json:"from,omitempty"`
	To         string       `json:"to"`
	Amount     erc20.Amount `json:"amount"`
	PrivateKey string       `json:"privateKey,omitempty"`
}

func PostTransferRoute(s *api.Server) *echo.Route {
	return s.Router.API.POST("/tokens/:chain/:address/erc20/transfer", postTransferHandler(s))
}

func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		chainID, err := api.ChainParam(c)
		if err != nil {
			return err
		}
		token, err := api.AddressParam(c, "address")
		if err != nil {
			return err
		}

		var body TransferRequest
		if err := api.BindBody(c, &body); err != nil {
			return err
		}
		if err := api.ValidateAddress("to", body.To); err != nil {
			return err
		}
		if body.From != "" {
			if err := api.ValidateAddress("from", body.From); err != nil {
				return err
			}
		}
		if err := api.RequireAmount(body.Amount); err != nil {
			return err
		}

		key := s.SigningKey(body.PrivateKey)
		from := body.From
		if from == "" {
			addr, err := wallet.AddressOf(key)
			if err != nil {
				return err
			}
			from = addr.Hex()
		}

		res, err := s.Tokens.Transfer(chainContext(c), chainID, token, from, body.To, body.Amount.Int, key)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, res)
	}
}
