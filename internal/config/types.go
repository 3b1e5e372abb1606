package config

import "github.com/Mohsinsiddi/tokenapi/internal/chain"

// Config holds all tokenapi configuration.
type Config struct {
	Server       Server        `json:"server"         yaml:"server"`
	Chains       []ChainConfig `json:"chains"         yaml:"chains"`
	ERC20ABIPath string        `json:"erc20_abi_path" yaml:"erc20_abi_path"`
	Signer       Signer        `json:"signer"         yaml:"signer"`
	Logger       Logger        `json:"logger"         yaml:"logger"`

	// internal: file the config was read from, empty for defaults
	path string
}

// Server configures the HTTP listener.
type Server struct {
	ListenAddress   string `json:"listen_address"           yaml:"listen_address"`
	ShutdownTimeout int    `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds"`
}

// ChainConfig is one chain to register at startup. Metadata fields left
// empty are filled from the built-in chain table.
type ChainConfig struct {
	ID             int64  `json:"id"                        yaml:"id"`
	RPCURL         string `json:"rpc_url"                   yaml:"rpc_url"`
	Name           string `json:"name,omitempty"            yaml:"name,omitempty"`
	DisplayName    string `json:"display_name,omitempty"    yaml:"display_name,omitempty"`
	NativeCurrency string `json:"native_currency,omitempty" yaml:"native_currency,omitempty"`
	Explorer       string `json:"explorer,omitempty"        yaml:"explorer,omitempty"`
	Testnet        bool   `json:"testnet,omitempty"         yaml:"testnet,omitempty"`
}

// Meta returns the chain metadata given in the entry.
func (c ChainConfig) Meta() chain.Chain {
	return chain.Chain{
		Name:           c.Name,
		DisplayName:    c.DisplayName,
		ChainID:        c.ID,
		NativeCurrency: c.NativeCurrency,
		Explorer:       c.Explorer,
		Testnet:        c.Testnet,
	}
}

// Signer configures the default signing key used when a write request
// carries none. The raw key is only ever read from the environment.
type Signer struct {
	PrivateKey      string `json:"-" yaml:"-"`
	KeyringService  string `json:"keyring_service,omitempty"  yaml:"keyring_service,omitempty"`
	KeyringKey      string `json:"keyring_key,omitempty"      yaml:"keyring_key,omitempty"`
	KeyringFileDir  string `json:"keyring_file_dir,omitempty" yaml:"keyring_file_dir,omitempty"`
	KeyringPassword string `json:"-" yaml:"-"`
}

// Logger configures the global zerolog logger.
type Logger struct {
	Level       string `json:"level"        yaml:"level"`
	PrettyPrint bool   `json:"pretty_print" yaml:"pretty_print"`
}
