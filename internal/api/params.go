package api

import (
	"strconv"

	"github.com/Mohsinsiddi/tokenapi/internal/contract"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidChain is returned for a chain path segment that is not a
	// positive base-10 integer.
	ErrInvalidChain = errors.New("invalid chain id")

	// ErrInvalidBody is returned when a request body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
)

// ParseChainID parses the chain path segment.
func ParseChainID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(ErrInvalidChain, "%q", s)
	}
	return id, nil
}

// ChainParam parses the :chain path parameter.
func ChainParam(c echo.Context) (int64, error) {
	return ParseChainID(c.Param("chain"))
}

// AddressParam validates an address-shaped path parameter and returns it
// unchanged.
func AddressParam(c echo.Context, name string) (string, error) {
	v := c.Param(name)
	if _, err := contract.ParseAddress(v); err != nil {
		return "", errors.Wrapf(err, "path parameter %s", name)
	}
	return v, nil
}

// ValidateAddress validates an address-shaped body field.
func ValidateAddress(field, v string) error {
	if _, err := contract.ParseAddress(v); err != nil {
		return errors.Wrapf(err, "field %s", field)
	}
	return nil
}

// RequireAmount rejects a missing amount. Zero passes; the facade owns the
// positivity check.
func RequireAmount(a erc20.Amount) error {
	if a.Int == nil {
		return errors.Wrap(erc20.ErrInvalidAmount, "field amount is required")
	}
	return nil
}

// BindBody decodes the JSON body into v. Amount errors keep their kind;
// everything else is ErrInvalidBody.
func BindBody(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		if errors.Is(err, erc20.ErrInvalidAmount) {
			return err
		}
		return errors.Wrap(ErrInvalidBody, bindMessage(err))
	}
	return nil
}

func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
