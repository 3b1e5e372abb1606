package contract_test

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/chain/chaintest"
	"github.com/Mohsinsiddi/tokenapi/internal/contract"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Hardhat account #0.
const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const spenderAddr = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

// writableClient expects one full submission and records the signed tx.
func writableClient(nonce uint64, sent **types.Transaction) *chaintest.Client {
	client := new(chaintest.Client)
	client.On("PendingNonceAt", mock.Anything, common.HexToAddress(ownerAddr)).Return(nonce, nil).Once()
	client.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1_000_000_000), nil).Once()
	client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(46_000), nil).Once()
	client.On("SendTransaction", mock.Anything, mock.AnythingOfType("*types.Transaction")).
		Run(func(args mock.Arguments) { *sent = args.Get(1).(*types.Transaction) }).
		Return(nil).Once()
	return client
}

func TestWriterSubmit(t *testing.T) {
	a := erc20(t)
	var sent *types.Transaction
	client := writableClient(3, &sent)

	w := contract.NewWriter(chaintest.Registry(client, 31337))
	hash, err := w.Submit(context.Background(), 31337, tokenAddr, "approve", a, testKey,
		common.HexToAddress(spenderAddr), big.NewInt(500))
	require.NoError(t, err)
	client.AssertExpectations(t)

	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash(), hash)
	assert.Equal(t, uint8(types.DynamicFeeTxType), sent.Type())
	assert.Equal(t, big.NewInt(31337), sent.ChainId())
	assert.Equal(t, uint64(3), sent.Nonce())
	assert.Equal(t, uint64(46_000), sent.Gas())
	assert.Equal(t, big.NewInt(1_000_000_000), sent.GasTipCap())
	assert.Equal(t, big.NewInt(2_000_000_000), sent.GasFeeCap())
	assert.Equal(t, common.HexToAddress(tokenAddr), *sent.To())

	wantData, err := a.Pack("approve", common.HexToAddress(spenderAddr), big.NewInt(500))
	require.NoError(t, err)
	assert.Equal(t, wantData, sent.Data())

	from, err := types.Sender(types.NewLondonSigner(big.NewInt(31337)), sent)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(ownerAddr), from)
}

func TestWriterValidatesBeforeCalling(t *testing.T) {
	a := erc20(t)
	args := []interface{}{common.HexToAddress(spenderAddr), big.NewInt(1)}
	tests := []struct {
		name    string
		chainID int64
		addr    string
		fn      string
		key     string
		want    error
	}{
		{"invalid address", 31337, "0xnothex", "approve", testKey, contract.ErrInvalidAddress},
		{"read function", 31337, tokenAddr, "balanceOf", testKey, contract.ErrInvalidFunction},
		{"unknown function", 31337, tokenAddr, "burn", testKey, contract.ErrInvalidFunction},
		{"missing key", 31337, tokenAddr, "approve", "", wallet.ErrMissingKey},
		{"invalid key", 31337, tokenAddr, "approve", "0x1234", wallet.ErrInvalidKey},
		{"unknown chain", 9999, tokenAddr, "approve", testKey, chain.ErrChainNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(chaintest.Client)
			w := contract.NewWriter(chaintest.Registry(client, 31337))

			_, err := w.Submit(context.Background(), tt.chainID, tt.addr, tt.fn, a, tt.key, args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, client.Calls)
		})
	}
}

func TestWriterEstimateFailureIsNotBroadcast(t *testing.T) {
	client := new(chaintest.Client)
	client.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(0), nil)
	client.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1), nil)
	client.On("EstimateGas", mock.Anything, mock.Anything).
		Return(uint64(0), errors.New("execution reverted: ERC20: insufficient allowance"))

	w := contract.NewWriter(chaintest.Registry(client, 31337))
	_, err := w.Submit(context.Background(), 31337, tokenAddr, "transferFrom", erc20(t), testKey,
		common.HexToAddress(ownerAddr), common.HexToAddress(spenderAddr), big.NewInt(1))

	var rpcErr *contract.RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, "eth_estimateGas", rpcErr.Method)
	assert.Equal(t, "execution reverted: ERC20: insufficient allowance", rpcErr.Err.Error())
	client.AssertNotCalled(t, "SendTransaction", mock.Anything, mock.Anything)
}

func TestWriterSendFailure(t *testing.T) {
	client := new(chaintest.Client)
	client.On("PendingNonceAt", mock.Anything, mock.Anything).Return(uint64(0), nil)
	client.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1), nil)
	client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(50_000), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(errors.New("nonce too low"))

	w := contract.NewWriter(chaintest.Registry(client, 31337))
	_, err := w.Submit(context.Background(), 31337, tokenAddr, "approve", erc20(t), testKey,
		common.HexToAddress(spenderAddr), big.NewInt(1))
	assert.True(t, errors.Is(err, contract.ErrRPCFailure))
	assert.Contains(t, err.Error(), "nonce too low")
}

func TestWriterSubmitOverHTTP(t *testing.T) {
	var hits int32
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionCount": "0x7",
		"eth_gasPrice":            "0x3b9aca00",
		"eth_estimateGas":         "0xb3b0",
		"eth_sendRawTransaction":  "0x" + strings.Repeat("ab", 32),
	}, &hits)

	reg := chain.NewRegistry(nil)
	require.NoError(t, reg.Register(context.Background(), 31337, srv.URL, chain.Chain{}))
	defer reg.Close()

	hash, err := contract.NewWriter(reg).Submit(context.Background(), 31337, tokenAddr, "approve", erc20(t), testKey,
		common.HexToAddress(spenderAddr), big.NewInt(10))
	require.NoError(t, err)
	assert.NotEqual(t, common.Hash{}, hash)
	assert.EqualValues(t, 4, hits)
}

func TestWriterRevertOverHTTP(t *testing.T) {
	var hits int32
	srv := rpcMock(t, map[string]interface{}{
		"eth_getTransactionCount": "0x0",
		"eth_gasPrice":            "0x1",
	}, &hits)

	reg := chain.NewRegistry(nil)
	require.NoError(t, reg.Register(context.Background(), 31337, srv.URL, chain.Chain{}))
	defer reg.Close()

	_, err := contract.NewWriter(reg).Submit(context.Background(), 31337, tokenAddr, "approve", erc20(t), testKey,
		common.HexToAddress(spenderAddr), big.NewInt(10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, contract.ErrRPCFailure))
	assert.Contains(t, err.Error(), "execution reverted: ERC20: insufficient allowance")
	assert.EqualValues(t, 3, hits)
}

const tokenCtorABI = `[{"type":"constructor","inputs":[
	{"name":"name_","type":"string"},{"name":"symbol_","type":"string"},{"name":"decimals_","type":"uint8"}]}]`

func TestWriterDeploy(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(tokenCtorABI))
	require.NoError(t, err)
	bytecode := common.FromHex("0x6080604052")

	var sent *types.Transaction
	client := writableClient(5, &sent)

	w := contract.NewWriter(chaintest.Registry(client, 31337))
	d, err := w.Deploy(context.Background(), 31337, bytecode, &parsed, testKey, "Sample", "SMP", uint8(18))
	require.NoError(t, err)
	client.AssertExpectations(t)

	assert.Nil(t, sent.To())
	assert.Equal(t, sent.Hash(), d.TxHash)
	assert.Equal(t, common.HexToAddress(ownerAddr), d.From)
	assert.Equal(t, crypto.CreateAddress(common.HexToAddress(ownerAddr), 5), d.Address)

	ctorArgs, err := parsed.Pack("", "Sample", "SMP", uint8(18))
	require.NoError(t, err)
	assert.Equal(t, append(bytecode, ctorArgs...), sent.Data())
}

func TestWriterDeployRejectsBadInput(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(tokenCtorABI))
	require.NoError(t, err)
	client := new(chaintest.Client)
	w := contract.NewWriter(chaintest.Registry(client, 31337))

	_, err = w.Deploy(context.Background(), 31337, nil, &parsed, testKey)
	assert.Error(t, err)

	_, err = w.Deploy(context.Background(), 31337, []byte{0x60}, &parsed, testKey, "only-one-arg")
	assert.True(t, errors.Is(err, contract.ErrInvalidArgument))

	assert.Empty(t, client.Calls)
}
