package httperrors

import (
	"net/http"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/contract"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Error kinds, reported in the "type" field.
const (
	TypeGeneric               = "generic"
	TypeInvalidAddress        = "InvalidAddress"
	TypeInvalidChain          = "InvalidChain"
	TypeInvalidAmount         = "InvalidAmount"
	TypeInvalidBody           = "InvalidBody"
	TypeInvalidArgument       = "InvalidArgument"
	TypeMissingSigningKey     = "MissingSigningKey"
	TypeInvalidSigningKey     = "InvalidSigningKey"
	TypeInsufficientAllowance = "InsufficientAllowance"
	TypeChainNotFound         = "ChainNotFound"
	TypeTokenNotFound         = "TokenNotFound"
	TypeRPCFailure            = "RpcFailure"
	TypeInternal              = "Internal"
)

type kind struct {
	target error
	code   int
	typ    string
	title  string
}

// Checked in order; the first match wins.
var kinds = []kind{
	{contract.ErrInvalidAddress, http.StatusBadRequest, TypeInvalidAddress, "Invalid address"},
	{api.ErrInvalidChain, http.StatusBadRequest, TypeInvalidChain, "Invalid chain id"},
	{erc20.ErrInvalidAmount, http.StatusBadRequest, TypeInvalidAmount, "Invalid amount"},
	{api.ErrInvalidBody, http.StatusBadRequest, TypeInvalidBody, "Invalid request body"},
	{contract.ErrInvalidArgument, http.StatusBadRequest, TypeInvalidArgument, "Invalid contract argument"},
	{contract.ErrInvalidFunction, http.StatusBadRequest, TypeInvalidArgument, "Invalid contract function"},
	{wallet.ErrMissingKey, http.StatusBadRequest, TypeMissingSigningKey, "Signing key is required"},
	{wallet.ErrInvalidKey, http.StatusBadRequest, TypeInvalidSigningKey, "Invalid signing key"},
	{erc20.ErrInsufficientAllowance, http.StatusBadRequest, TypeInsufficientAllowance, "Insufficient allowance"},
	{chain.ErrChainNotFound, http.StatusNotFound, TypeChainNotFound, "Chain not found"},
	{erc20.ErrTokenNotFound, http.StatusNotFound, TypeTokenNotFound, "Token not found"},
}

// FromError converts any handler error into an HTTPError.
func FromError(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}

	var rpcErr *contract.RPCError
	if errors.As(err, &rpcErr) {
		e := NewHTTPErrorWithDetail(http.StatusBadGateway, TypeRPCFailure, "Chain RPC call failed", rpcErr.Err.Error())
		e.Internal = err
		return e
	}

	for _, k := range kinds {
		if errors.Is(err, k.target) {
			e := NewHTTPErrorWithDetail(k.code, k.typ, k.title, err.Error())
			e.Internal = err
			return e
		}
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		e := NewFromEcho(echoErr)
		e.Internal = err
		return e
	}

	e := NewHTTPError(http.StatusInternalServerError, TypeInternal, http.StatusText(http.StatusInternalServerError))
	e.Internal = err
	return e
}
