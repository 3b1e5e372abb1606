package erc20

import (
	"bytes"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// MaxAmount is the largest value a uint256 can hold.
var MaxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// AmountPair is a raw token amount and the same amount scaled by the token's
// decimals. Balance is always computed from Raw.
type AmountPair struct {
	Raw        *big.Int `json:"-"`
	BalanceRaw string   `json:"balanceRaw"`
	Balance    float64  `json:"balance"`
}

// NewAmountPair scales raw by decimals.
func NewAmountPair(raw *big.Int, decimals uint8) AmountPair {
	return AmountPair{
		Raw:        raw,
		BalanceRaw: raw.String(),
		Balance:    Scale(raw, decimals),
	}
}

// Scale returns raw / 10^decimals rounded to the nearest float64.
func Scale(raw *big.Int, decimals uint8) float64 {
	if raw == nil {
		return 0
	}
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	q := new(big.Float).SetPrec(512).SetInt(raw)
	q.Quo(q, new(big.Float).SetPrec(512).SetInt(unit))
	f, _ := q.Float64()
	return f
}

// FormatUnits renders raw / 10^decimals exactly, trimming trailing zeros of
// the fraction: 1500000 with 6 decimals is "1.5".
func FormatUnits(raw *big.Int, decimals uint8) string {
	if raw == nil {
		return "0"
	}
	digits := new(big.Int).Abs(raw).String()
	if decimals > 0 {
		if pad := int(decimals) + 1 - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
		cut := len(digits) - int(decimals)
		frac := strings.TrimRight(digits[cut:], "0")
		digits = digits[:cut]
		if frac != "" {
			digits += "." + frac
		}
	}
	if raw.Sign() < 0 {
		return "-" + digits
	}
	return digits
}

// ParseAmount parses a base-10 digit string. Zero is accepted here; the
// operations that need a positive amount check it themselves.
func ParseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, errors.Wrap(ErrInvalidAmount, "amount is required")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, errors.Wrapf(ErrInvalidAmount, "%q is not a decimal integer", s)
		}
	}
	n, _ := new(big.Int).SetString(s, 10)
	if n.Cmp(MaxAmount) > 0 {
		return nil, errors.Wrapf(ErrInvalidAmount, "%s exceeds 2^256-1", s)
	}
	return n, nil
}

// Amount is a request amount. It unmarshals from a JSON string of digits or a
// bare JSON integer without passing through float64.
type Amount struct {
	*big.Int
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.Int = nil
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	n, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	a.Int = n
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Int == nil {
		return []byte("null"), nil
	}
	return []byte(`"` + a.Int.String() + `"`), nil
}

// requirePositive checks amount > 0.
func requirePositive(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return errors.Wrap(ErrInvalidAmount, "amount must be greater than zero")
	}
	return nil
}
