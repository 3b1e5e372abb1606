package chain

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// ErrTxReverted is returned by WaitForReceipt when the mined transaction
// failed.
var ErrTxReverted = errors.New("transaction reverted")

// ReceiptPollInterval is how often WaitForReceipt asks for the receipt.
var ReceiptPollInterval = 2 * time.Second

// WaitForReceipt polls until hash is mined or timeout expires. A reverted
// transaction returns its receipt together with ErrTxReverted.
func WaitForReceipt(ctx context.Context, client Client, hash common.Hash, timeout time.Duration) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(ReceiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			if receipt.Status == types.ReceiptStatusFailed {
				return receipt, errors.Wrapf(ErrTxReverted, "hash %s", hash.Hex())
			}
			return receipt, nil
		case errors.Is(err, ethereum.NotFound):
			// still pending
		case ctx.Err() != nil:
			return nil, errors.Errorf("transaction %s not mined within %s", hash.Hex(), timeout)
		default:
			return nil, errors.Wrapf(err, "fetching receipt %s", hash.Hex())
		}

		select {
		case <-ctx.Done():
			return nil, errors.Errorf("transaction %s not mined within %s", hash.Hex(), timeout)
		case <-ticker.C:
		}
	}
}
