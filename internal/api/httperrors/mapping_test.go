package httperrors_test

import (
	"net/http"
	"testing"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/Mohsinsiddi/tokenapi/internal/api/httperrors"
	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/contract"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		err  error
		code int
		typ  string
	}{
		{errors.Wrapf(contract.ErrInvalidAddress, "%q", "0x1"), http.StatusBadRequest, httperrors.TypeInvalidAddress},
		{errors.Wrap(api.ErrInvalidChain, "abc"), http.StatusBadRequest, httperrors.TypeInvalidChain},
		{errors.Wrap(erc20.ErrInvalidAmount, "zero"), http.StatusBadRequest, httperrors.TypeInvalidAmount},
		{errors.Wrap(api.ErrInvalidBody, "eof"), http.StatusBadRequest, httperrors.TypeInvalidBody},
		{wallet.ErrMissingKey, http.StatusBadRequest, httperrors.TypeMissingSigningKey},
		{wallet.ErrInvalidKey, http.StatusBadRequest, httperrors.TypeInvalidSigningKey},
		{errors.Wrap(erc20.ErrInsufficientAllowance, "0 < 5"), http.StatusBadRequest, httperrors.TypeInsufficientAllowance},
		{errors.Wrap(chain.ErrChainNotFound, "chain id 9999"), http.StatusNotFound, httperrors.TypeChainNotFound},
		{errors.Wrap(erc20.ErrTokenNotFound, "no code"), http.StatusNotFound, httperrors.TypeTokenNotFound},
		{&contract.RPCError{Method: "eth_call", Err: errors.New("timeout")}, http.StatusBadGateway, httperrors.TypeRPCFailure},
		{echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, httperrors.TypeGeneric},
		{errors.New("surprise"), http.StatusInternalServerError, httperrors.TypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			he := httperrors.FromError(tt.err)
			assert.Equal(t, tt.code, he.StatusCode())
			assert.Equal(t, tt.typ, *he.Type)
			assert.NotEmpty(t, *he.Title)
			assert.True(t, errors.Is(he, tt.err))
		})
	}
}

func TestFromErrorRPCDetailIsVerbatim(t *testing.T) {
	cause := errors.New("execution reverted: ERC20: insufficient allowance")
	he := httperrors.FromError(errors.Wrap(&contract.RPCError{Method: "eth_estimateGas", Err: cause}, "approve"))
	assert.Equal(t, cause.Error(), he.Detail)
}

func TestFromErrorKeepsHTTPError(t *testing.T) {
	orig := httperrors.NewHTTPError(http.StatusTeapot, "teapot", "short and stout")
	assert.Same(t, orig, httperrors.FromError(orig))
}

func TestHTTPErrorString(t *testing.T) {
	he := httperrors.NewHTTPErrorWithDetail(http.StatusNotFound, httperrors.TypeChainNotFound, "Chain not found", "chain id 5")
	assert.Equal(t, "HTTPError 404 (ChainNotFound): Chain not found - chain id 5", he.Error())
}
