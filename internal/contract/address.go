package contract

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// AddressLength is the length of an address in its 0x-prefixed hex form.
const AddressLength = 2 + 2*common.AddressLength

// IsAddress reports whether s is 0x followed by exactly 40 hex digits.
// Mixed case is accepted without checking the EIP-55 checksum.
func IsAddress(s string) bool {
	return len(s) == AddressLength && (s[:2] == "0x" || s[:2] == "0X") && common.IsHexAddress(s)
}

// ParseAddress validates s and returns the address.
func ParseAddress(s string) (common.Address, error) {
	if !IsAddress(s) {
		return common.Address{}, errors.Wrapf(ErrInvalidAddress, "%q", s)
	}
	return common.HexToAddress(s), nil
}
