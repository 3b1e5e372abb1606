package erc20

import "github.com/pkg/errors"

var (
	// ErrInvalidAmount is returned for amounts that are not a positive
	// integer below 2^256.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientAllowance is returned by Transfer when the current
	// allowance cannot cover the amount.
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	// ErrTokenNotFound is returned when the token address answers a read
	// with no usable data, e.g. because it holds no contract.
	ErrTokenNotFound = errors.New("token not found")
)
