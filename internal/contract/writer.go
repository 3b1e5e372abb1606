package contract

import (
	"context"
	"math/big"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/util"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// Writer signs and broadcasts state-changing contract transactions.
type Writer struct {
	chains Resolver
}

// NewWriter creates a Writer over the given chains.
func NewWriter(chains Resolver) *Writer {
	return &Writer{chains: chains}
}

// Submit calls a write function and broadcasts the transaction. It returns
// the hash as soon as the node accepts it; it does not wait for inclusion.
func (w *Writer) Submit(ctx context.Context, chainID int64, contractAddr, funcName string, contractABI *abi.ABI, signingKey string, args ...interface{}) (common.Hash, error) {
	to, err := ParseAddress(contractAddr)
	if err != nil {
		return common.Hash{}, err
	}
	fn, err := findMethod(contractABI, funcName)
	if err != nil {
		return common.Hash{}, err
	}
	if fn.IsConstant() {
		return common.Hash{}, errors.Wrapf(ErrInvalidFunction, "%q is not a write function", funcName)
	}

	signer, err := wallet.ParseKey(signingKey)
	if err != nil {
		return common.Hash{}, err
	}

	ep, err := w.chains.Resolve(chainID)
	if err != nil {
		return common.Hash{}, err
	}

	calldata, err := contractABI.Pack(funcName, args...)
	if err != nil {
		return common.Hash{}, errors.Wrapf(ErrInvalidArgument, "%s: %v", funcName, err)
	}

	signed, err := w.send(ctx, ep, signer, &to, calldata)
	if err != nil {
		return common.Hash{}, err
	}

	util.LogFromContext(ctx).Info().
		Int64("chain_id", chainID).
		Str("contract", to.Hex()).
		Str("function", funcName).
		Str("from", signer.Address().Hex()).
		Str("tx_hash", signed.Hash().Hex()).
		Msg("Transaction submitted")

	return signed.Hash(), nil
}

// Deployment is a broadcast contract creation.
type Deployment struct {
	TxHash  common.Hash
	Address common.Address // derived from sender and nonce
	From    common.Address
}

// Deploy broadcasts a contract creation transaction with constructor
// arguments packed against contractABI.
func (w *Writer) Deploy(ctx context.Context, chainID int64, bytecode []byte, contractABI *abi.ABI, signingKey string, args ...interface{}) (*Deployment, error) {
	if len(bytecode) == 0 {
		return nil, errors.New("bytecode is empty")
	}
	signer, err := wallet.ParseKey(signingKey)
	if err != nil {
		return nil, err
	}
	ep, err := w.chains.Resolve(chainID)
	if err != nil {
		return nil, err
	}

	ctorArgs, err := contractABI.Pack("", args...)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "constructor: %v", err)
	}
	data := append(append([]byte{}, bytecode...), ctorArgs...)

	signed, err := w.send(ctx, ep, signer, nil, data)
	if err != nil {
		return nil, err
	}

	d := &Deployment{
		TxHash:  signed.Hash(),
		Address: crypto.CreateAddress(signer.Address(), signed.Nonce()),
		From:    signer.Address(),
	}
	util.LogFromContext(ctx).Info().
		Int64("chain_id", chainID).
		Str("from", d.From.Hex()).
		Str("contract", d.Address.Hex()).
		Str("tx_hash", d.TxHash.Hex()).
		Msg("Deployment submitted")
	return d, nil
}

// send fills nonce, fees and gas from the node, signs locally and
// broadcasts. A nil to creates a contract.
func (w *Writer) send(ctx context.Context, ep *chain.Endpoint, signer *wallet.Signer, to *common.Address, data []byte) (*types.Transaction, error) {
	from := signer.Address()

	nonce, err := ep.Client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, rpcErr("eth_getTransactionCount", err)
	}

	gasPrice, err := ep.Client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, rpcErr("eth_gasPrice", err)
	}

	gas, err := ep.Client.EstimateGas(ctx, ethereum.CallMsg{From: from, To: to, Data: data})
	if err != nil {
		// Reverts surface here, before anything is broadcast.
		return nil, rpcErr("eth_estimateGas", err)
	}

	chainID := big.NewInt(ep.ID())
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: gasPrice,
		GasFeeCap: new(big.Int).Mul(gasPrice, big.NewInt(2)),
		Gas:       gas,
		To:        to,
		Value:     big.NewInt(0),
		Data:      data,
	})

	signed, err := signer.SignTx(tx, chainID)
	if err != nil {
		return nil, err
	}

	if err := ep.Client.SendTransaction(ctx, signed); err != nil {
		return nil, rpcErr("eth_sendRawTransaction", err)
	}
	return signed, nil
}
