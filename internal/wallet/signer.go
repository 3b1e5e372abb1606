package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	// ErrMissingKey is returned when no signing key was supplied.
	ErrMissingKey = errors.New("signing key is required")

	// ErrInvalidKey is returned when a signing key is not a valid secp256k1
	// private key.
	ErrInvalidKey = errors.New("invalid signing key")
)

// Signer signs EVM transactions with a private key held in memory for the
// duration of one request.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// ParseKey builds a Signer from a hex private key, with or without 0x.
func ParseKey(hexKey string) (*Signer, error) {
	hexKey = strings.TrimSpace(hexKey)
	if hexKey == "" {
		return nil, ErrMissingKey
	}

	key, err := crypto.HexToECDSA(stripHexPrefix(hexKey))
	if err != nil {
		// The parse error can echo key material; keep it out of the message.
		return nil, ErrInvalidKey
	}

	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// AddressOf derives the account address of a hex private key.
func AddressOf(hexKey string) (common.Address, error) {
	s, err := ParseKey(hexKey)
	if err != nil {
		return common.Address{}, err
	}
	return s.Address(), nil
}

// Address returns the signing account.
func (s *Signer) Address() common.Address {
	return s.address
}

// SignTx signs tx for chainID with the London signer (EIP-1559 and legacy).
func (s *Signer) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, types.NewLondonSigner(chainID), s.key)
	if err != nil {
		return nil, errors.Wrap(err, "signing transaction")
	}
	return signed, nil
}

func stripHexPrefix(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}
