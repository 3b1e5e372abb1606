package chain_test

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// rpcMock serves a fixed JSON-RPC result per method and counts requests.
// Unknown methods return an RPC error.
func rpcMock(t *testing.T, responses map[string]interface{}, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		var req struct {
			Method string          `json:"method"`
			ID     json.RawMessage `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if result, ok := responses[req.Method]; ok {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  result,
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"jsonrpc": "2.0",
			"id":      req.ID,
			"error":   map[string]interface{}{"code": -32000, "message": "execution reverted"},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// fakeClient is an in-memory chain.Client.
type fakeClient struct {
	receipts []*types.Receipt // served in order; nil means pending
	calls    int
	closed   bool
}

func (f *fakeClient) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return nil, nil
}
func (f *fakeClient) PendingNonceAt(context.Context, common.Address) (uint64, error) { return 0, nil }
func (f *fakeClient) SuggestGasPrice(context.Context) (*big.Int, error)             { return big.NewInt(1), nil }
func (f *fakeClient) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error)  { return 21000, nil }
func (f *fakeClient) SendTransaction(context.Context, *types.Transaction) error     { return nil }
func (f *fakeClient) Close()                                                        { f.closed = true }

func (f *fakeClient) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	i := f.calls
	f.calls++
	if i >= len(f.receipts) || f.receipts[i] == nil {
		return nil, ethereum.NotFound
	}
	return f.receipts[i], nil
}

// ---------------------------------------------------------------------------
// DialEthereum
// ---------------------------------------------------------------------------

func TestDialEthereumIsLazy(t *testing.T) {
	var hits int32
	srv := rpcMock(t, map[string]interface{}{}, &hits)

	c, err := chain.DialEthereum(context.Background(), srv.URL)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestDialEthereumCallContract(t *testing.T) {
	var hits int32
	srv := rpcMock(t, map[string]interface{}{
		"eth_call": "0x0000000000000000000000000000000000000000000000000000000000000012",
	}, &hits)

	c, err := chain.DialEthereum(context.Background(), srv.URL)
	require.NoError(t, err)
	defer c.Close()

	to := common.HexToAddress("0x781337A07e04a0b3De04D7E21Bad55dc6BC652D0")
	out, err := c.CallContract(context.Background(), ethereum.CallMsg{To: &to, Data: common.FromHex("0x313ce567")}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(18), new(big.Int).SetBytes(out).Int64())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestDialEthereumRPCErrorIsVerbatim(t *testing.T) {
	var hits int32
	srv := rpcMock(t, map[string]interface{}{}, &hits)

	c, err := chain.DialEthereum(context.Background(), srv.URL)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.SuggestGasPrice(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution reverted")
}

// ---------------------------------------------------------------------------
// WaitForReceipt
// ---------------------------------------------------------------------------

func fastPolling(t *testing.T) {
	t.Helper()
	prev := chain.ReceiptPollInterval
	chain.ReceiptPollInterval = 1
	t.Cleanup(func() { chain.ReceiptPollInterval = prev })
}

func TestWaitForReceiptMined(t *testing.T) {
	fastPolling(t)
	want := &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(7)}
	fc := &fakeClient{receipts: []*types.Receipt{nil, nil, want}}

	got, err := chain.WaitForReceipt(context.Background(), fc, common.Hash{0x1}, time.Second)
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, 3, fc.calls)
}

func TestWaitForReceiptReverted(t *testing.T) {
	fastPolling(t)
	fc := &fakeClient{receipts: []*types.Receipt{{Status: types.ReceiptStatusFailed}}}

	got, err := chain.WaitForReceipt(context.Background(), fc, common.Hash{0x1}, time.Second)
	assert.ErrorIs(t, err, chain.ErrTxReverted)
	assert.NotNil(t, got)
}

func TestWaitForReceiptTimeout(t *testing.T) {
	fastPolling(t)
	fc := &fakeClient{}

	_, err := chain.WaitForReceipt(context.Background(), fc, common.Hash{0x1}, 20*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not mined")
}
