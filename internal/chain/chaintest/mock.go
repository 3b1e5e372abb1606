// Package chaintest provides a testify mock of chain.Client.
package chaintest

import (
	"context"
	"math/big"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
)

// Client is a mock chain.Client. Close is not recorded.
type Client struct {
	mock.Mock
}

var _ chain.Client = (*Client)(nil)

func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	args := c.Called(ctx, msg, block)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	args := c.Called(ctx, account)
	return args.Get(0).(uint64), args.Error(1)
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	args := c.Called(ctx)
	out, _ := args.Get(0).(*big.Int)
	return out, args.Error(1)
}

func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	args := c.Called(ctx, msg)
	return args.Get(0).(uint64), args.Error(1)
}

func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.Called(ctx, tx).Error(0)
}

func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	args := c.Called(ctx, hash)
	out, _ := args.Get(0).(*types.Receipt)
	return out, args.Error(1)
}

func (c *Client) Close() {}

// Registry returns a registry holding c under each of ids.
func Registry(c chain.Client, ids ...int64) *chain.Registry {
	reg := chain.NewRegistry(func(context.Context, string) (chain.Client, error) {
		return c, nil
	})
	for _, id := range ids {
		if err := reg.Register(context.Background(), id, "http://mock", chain.Chain{}); err != nil {
			panic(err)
		}
	}
	return reg
}
