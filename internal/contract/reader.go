package contract

import (
	"context"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/util"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// Resolver looks up a registered chain. *chain.Registry implements it.
type Resolver interface {
	Resolve(id int64) (*chain.Endpoint, error)
}

// Reader calls read-only (view/pure) contract functions.
type Reader struct {
	chains Resolver
}

// NewReader creates a Reader over the given chains.
func NewReader(chains Resolver) *Reader {
	return &Reader{chains: chains}
}

// Call runs a read function with eth_call at the latest block and returns the
// decoded outputs. Inputs are validated before the chain is contacted.
func (r *Reader) Call(ctx context.Context, chainID int64, contractAddr, funcName string, contractABI *abi.ABI, args ...interface{}) ([]interface{}, error) {
	to, err := ParseAddress(contractAddr)
	if err != nil {
		return nil, err
	}
	fn, err := findMethod(contractABI, funcName)
	if err != nil {
		return nil, err
	}
	if !fn.IsConstant() {
		return nil, errors.Wrapf(ErrInvalidFunction, "%q is not a read function (stateMutability: %s)", funcName, fn.StateMutability)
	}

	ep, err := r.chains.Resolve(chainID)
	if err != nil {
		return nil, err
	}

	calldata, err := contractABI.Pack(funcName, args...)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s: %v", funcName, err)
	}

	util.LogFromContext(ctx).Debug().
		Int64("chain_id", chainID).
		Str("contract", to.Hex()).
		Str("function", funcName).
		Msg("eth_call")

	result, err := ep.Client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: calldata}, nil)
	if err != nil {
		return nil, rpcErr("eth_call", err)
	}

	if len(fn.Outputs) == 0 {
		return nil, nil
	}
	if len(result) == 0 {
		return nil, errors.Wrapf(ErrNoData, "%s on %s", funcName, to.Hex())
	}

	decoded, err := fn.Outputs.Unpack(result)
	if err != nil {
		return nil, errors.Wrapf(ErrNoData, "decoding %s on %s: %v", funcName, to.Hex(), err)
	}
	return decoded, nil
}

// findMethod finds a function by name in the ABI.
func findMethod(contractABI *abi.ABI, name string) (abi.Method, error) {
	if name == "" {
		return abi.Method{}, errors.Wrap(ErrInvalidFunction, "function name must be provided")
	}
	if contractABI == nil {
		return abi.Method{}, errors.Wrap(ErrInvalidFunction, "no ABI supplied")
	}
	fn, ok := contractABI.Methods[name]
	if !ok {
		return abi.Method{}, errors.Wrapf(ErrInvalidFunction, "function %q not found in ABI", name)
	}
	return fn, nil
}
