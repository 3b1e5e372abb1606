package chain

import "fmt"

// Chain holds the descriptive metadata of an EVM chain.
type Chain struct {
	Name           string `json:"name"          yaml:"name"`
	DisplayName    string `json:"display_name"  yaml:"display_name"`
	ChainID        int64  `json:"chain_id"      yaml:"chain_id"`
	NativeCurrency string `json:"native_currency" yaml:"native_currency"`
	Explorer       string `json:"explorer,omitempty" yaml:"explorer,omitempty"`
	Testnet        bool   `json:"testnet"       yaml:"testnet"`
}

// LocalChainID is the chain id used by Hardhat and Anvil development nodes.
const LocalChainID int64 = 31337

var knownChains = []Chain{
	{Name: "localhost", DisplayName: "Localhost", ChainID: LocalChainID, NativeCurrency: "ETH", Testnet: true},
	{Name: "ethereum", DisplayName: "Ethereum", ChainID: 1, NativeCurrency: "ETH", Explorer: "https://etherscan.io"},
	{Name: "sepolia", DisplayName: "Sepolia", ChainID: 11155111, NativeCurrency: "ETH", Explorer: "https://sepolia.etherscan.io", Testnet: true},
	{Name: "base", DisplayName: "Base", ChainID: 8453, NativeCurrency: "ETH", Explorer: "https://basescan.org"},
	{Name: "base-sepolia", DisplayName: "Base Sepolia", ChainID: 84532, NativeCurrency: "ETH", Explorer: "https://sepolia.basescan.org", Testnet: true},
	{Name: "polygon", DisplayName: "Polygon", ChainID: 137, NativeCurrency: "MATIC", Explorer: "https://polygonscan.com"},
	{Name: "arbitrum", DisplayName: "Arbitrum", ChainID: 42161, NativeCurrency: "ETH", Explorer: "https://arbiscan.io"},
	{Name: "optimism", DisplayName: "Optimism", ChainID: 10, NativeCurrency: "ETH", Explorer: "https://optimistic.etherscan.io"},
	{Name: "bnb", DisplayName: "BNB Chain", ChainID: 56, NativeCurrency: "BNB", Explorer: "https://bscscan.com"},
}

// Known returns the built-in metadata for id. ok is false for chains not in
// the table.
func Known(id int64) (Chain, bool) {
	for _, c := range knownChains {
		if c.ChainID == id {
			return c, true
		}
	}
	return Chain{}, false
}

// Describe merges meta over the built-in metadata for id. Fields left empty in
// meta are taken from the table; unknown chains get a generic name.
func Describe(id int64, meta Chain) Chain {
	base, ok := Known(id)
	if !ok {
		base = Chain{
			Name:           fmt.Sprintf("chain-%d", id),
			DisplayName:    fmt.Sprintf("Chain %d", id),
			NativeCurrency: "ETH",
		}
	}
	base.ChainID = id
	if meta.Name != "" {
		base.Name = meta.Name
	}
	if meta.DisplayName != "" {
		base.DisplayName = meta.DisplayName
	}
	if meta.NativeCurrency != "" {
		base.NativeCurrency = meta.NativeCurrency
	}
	if meta.Explorer != "" {
		base.Explorer = meta.Explorer
	}
	if meta.Testnet {
		base.Testnet = true
	}
	return base
}
