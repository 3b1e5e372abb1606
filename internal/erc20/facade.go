// Package erc20 implements token reads and writes on top of the generic
// contract reader and writer.
package erc20

import (
	"context"
	"math/big"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/contract"
	"github.com/Mohsinsiddi/tokenapi/internal/util"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Reader runs read-only contract calls. *contract.Reader implements it.
type Reader interface {
	Call(ctx context.Context, chainID int64, contractAddr, funcName string, contractABI *abi.ABI, args ...interface{}) ([]interface{}, error)
}

// Writer submits state-changing contract calls. *contract.Writer implements it.
type Writer interface {
	Submit(ctx context.Context, chainID int64, contractAddr, funcName string, contractABI *abi.ABI, signingKey string, args ...interface{}) (common.Hash, error)
}

// TokenDescriptor is the live ERC20 metadata of a token.
type TokenDescriptor struct {
	Address        string  `json:"address"`
	NetworkID      int64   `json:"networkId"`
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	Decimals       uint8   `json:"decimals"`
	TotalSupplyRaw string  `json:"totalSupplyRaw"`
	TotalSupply    float64 `json:"totalSupply"`
}

// Token is a TokenDescriptor with the metadata of the chain it lives on.
type Token struct {
	TokenDescriptor
	Chain chain.Chain `json:"chain"`
}

// TxResult is the hash of a submitted transaction.
type TxResult struct {
	TxHash string `json:"txHash"`
}

// Facade exposes ERC20 operations for any (chain id, token address) pair.
type Facade struct {
	reader Reader
	writer Writer
	chains contract.Resolver
	abi    *abi.ABI
}

// NewFacade creates a Facade. The ABI must define every ERC20 function.
func NewFacade(reader Reader, writer Writer, chains contract.Resolver, tokenABI *abi.ABI) *Facade {
	return &Facade{
		reader: reader,
		writer: writer,
		chains: chains,
		abi:    tokenABI,
	}
}

// Describe reads decimals, name, symbol and totalSupply concurrently. Any
// failing read fails the whole call.
func (f *Facade) Describe(ctx context.Context, chainID int64, token string) (*TokenDescriptor, error) {
	addr, err := contract.ParseAddress(token)
	if err != nil {
		return nil, err
	}

	var (
		decimals     uint8
		name, symbol string
		supply       *big.Int
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		decimals, err = f.decimals(ctx, chainID, token)
		return err
	})
	g.Go(func() (err error) {
		name, err = callOne[string](ctx, f, chainID, token, contract.MethodName)
		return err
	})
	g.Go(func() (err error) {
		symbol, err = callOne[string](ctx, f, chainID, token, contract.MethodSymbol)
		return err
	})
	g.Go(func() (err error) {
		supply, err = callOne[*big.Int](ctx, f, chainID, token, contract.MethodTotalSupply)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &TokenDescriptor{
		Address:        addr.Hex(),
		NetworkID:      chainID,
		Name:           name,
		Symbol:         symbol,
		Decimals:       decimals,
		TotalSupplyRaw: supply.String(),
		TotalSupply:    Scale(supply, decimals),
	}, nil
}

// Token describes the token and attaches the chain's metadata.
func (f *Facade) Token(ctx context.Context, chainID int64, token string) (*Token, error) {
	ep, err := f.chains.Resolve(chainID)
	if err != nil {
		return nil, err
	}
	d, err := f.Describe(ctx, chainID, token)
	if err != nil {
		return nil, err
	}
	return &Token{TokenDescriptor: *d, Chain: ep.Chain}, nil
}

// BalanceOf returns the owner's balance.
func (f *Facade) BalanceOf(ctx context.Context, chainID int64, token, owner string) (*AmountPair, error) {
	ownerAddr, err := contract.ParseAddress(owner)
	if err != nil {
		return nil, err
	}
	return f.scaled(ctx, chainID, token, contract.MethodBalanceOf, ownerAddr)
}

// Allowance returns how much spender may move on behalf of owner.
func (f *Facade) Allowance(ctx context.Context, chainID int64, token, owner, spender string) (*AmountPair, error) {
	ownerAddr, err := contract.ParseAddress(owner)
	if err != nil {
		return nil, err
	}
	spenderAddr, err := contract.ParseAddress(spender)
	if err != nil {
		return nil, err
	}
	return f.scaled(ctx, chainID, token, contract.MethodAllowance, ownerAddr, spenderAddr)
}

// Approve submits approve(spender, amount). The resulting allowance is not
// checked.
func (f *Facade) Approve(ctx context.Context, chainID int64, token, spender string, amount *big.Int, signingKey string) (*TxResult, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	spenderAddr, err := contract.ParseAddress(spender)
	if err != nil {
		return nil, err
	}

	hash, err := f.writer.Submit(ctx, chainID, token, contract.MethodApprove, f.abi, signingKey, spenderAddr, amount)
	if err != nil {
		return nil, err
	}
	return &TxResult{TxHash: hash.Hex()}, nil
}

// Transfer submits transferFrom(from, to, amount) after checking that
// allowance(from, to) covers amount. The check and the submission are not
// atomic; a concurrent change to the allowance can still make the
// transaction revert. The signing key is checked before the allowance read.
func (f *Facade) Transfer(ctx context.Context, chainID int64, token, from, to string, amount *big.Int, signingKey string) (*TxResult, error) {
	if err := requirePositive(amount); err != nil {
		return nil, err
	}
	if _, err := wallet.ParseKey(signingKey); err != nil {
		return nil, err
	}
	fromAddr, err := contract.ParseAddress(from)
	if err != nil {
		return nil, err
	}
	toAddr, err := contract.ParseAddress(to)
	if err != nil {
		return nil, err
	}

	allowance, err := callOne[*big.Int](ctx, f, chainID, token, contract.MethodAllowance, fromAddr, toAddr)
	if err != nil {
		return nil, err
	}
	if allowance.Sign() == 0 || allowance.Cmp(amount) < 0 {
		return nil, errors.Wrapf(ErrInsufficientAllowance, "allowance %s is below amount %s", allowance, amount)
	}

	util.LogFromContext(ctx).Debug().
		Str("allowance", allowance.String()).
		Str("amount", amount.String()).
		Msg("Allowance covers transfer")

	hash, err := f.writer.Submit(ctx, chainID, token, contract.MethodTransferFrom, f.abi, signingKey, fromAddr, toAddr, amount)
	if err != nil {
		return nil, err
	}
	return &TxResult{TxHash: hash.Hex()}, nil
}

// scaled reads decimals, then the raw amount returned by method.
func (f *Facade) scaled(ctx context.Context, chainID int64, token, method string, args ...interface{}) (*AmountPair, error) {
	decimals, err := f.decimals(ctx, chainID, token)
	if err != nil {
		return nil, err
	}
	raw, err := callOne[*big.Int](ctx, f, chainID, token, method, args...)
	if err != nil {
		return nil, err
	}
	pair := NewAmountPair(raw, decimals)
	return &pair, nil
}

func (f *Facade) decimals(ctx context.Context, chainID int64, token string) (uint8, error) {
	return callOne[uint8](ctx, f, chainID, token, contract.MethodDecimals)
}

// callOne calls a function returning a single value of type T. A call that
// yields no data, or data of the wrong type, means there is no ERC20 token
// at the address.
func callOne[T any](ctx context.Context, f *Facade, chainID int64, token, method string, args ...interface{}) (T, error) {
	var zero T
	out, err := f.reader.Call(ctx, chainID, token, method, f.abi, args...)
	if err != nil {
		if errors.Is(err, contract.ErrNoData) {
			return zero, errors.Wrapf(ErrTokenNotFound, "%s on chain %d: %v", token, chainID, err)
		}
		return zero, err
	}
	if len(out) != 1 {
		return zero, errors.Wrapf(ErrTokenNotFound, "%s returned %d values", method, len(out))
	}
	v, ok := out[0].(T)
	if !ok {
		return zero, errors.Wrapf(ErrTokenNotFound, "%s returned %T", method, out[0])
	}
	return v, nil
}
