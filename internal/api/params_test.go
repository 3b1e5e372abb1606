package api_test

import (
	"testing"

	"github.com/Mohsinsiddi/tokenapi/internal/api"
	"github.com/Mohsinsiddi/tokenapi/internal/config"
	"github.com/Mohsinsiddi/tokenapi/internal/contract"
	"github.com/Mohsinsiddi/tokenapi/internal/erc20"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChainID(t *testing.T) {
	id, err := api.ParseChainID("31337")
	require.NoError(t, err)
	assert.Equal(t, int64(31337), id)

	for _, in := range []string{"", "0", "-5", "0x1", "1e3", "99999999999999999999", " 1"} {
		_, err := api.ParseChainID(in)
		assert.True(t, errors.Is(err, api.ErrInvalidChain), in)
	}
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, api.ValidateAddress("to", "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"))
	assert.NoError(t, api.ValidateAddress("to", "0X70997970C51812DC3A010C7D01B50E0D17DC79C8"))

	err := api.ValidateAddress("to", "")
	assert.True(t, errors.Is(err, contract.ErrInvalidAddress))
	assert.Contains(t, err.Error(), "field to")
}

func TestRequireAmount(t *testing.T) {
	assert.True(t, errors.Is(api.RequireAmount(erc20.Amount{}), erc20.ErrInvalidAmount))
}

func TestSigningKeyFallback(t *testing.T) {
	s := api.NewServer(defaultServerConfig(), nil, nil, "0xdefault")
	assert.Equal(t, "0xbody", s.SigningKey("0xbody"))
	assert.Equal(t, "0xdefault", s.SigningKey(""))
	assert.False(t, s.Ready())
}

func defaultServerConfig() config.Server {
	return config.Server{ListenAddress: config.DefaultListenAddress}
}
