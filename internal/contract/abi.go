package contract

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// ERC20 function names.
const (
	MethodName         = "name"
	MethodSymbol       = "symbol"
	MethodDecimals     = "decimals"
	MethodTotalSupply  = "totalSupply"
	MethodBalanceOf    = "balanceOf"
	MethodAllowance    = "allowance"
	MethodApprove      = "approve"
	MethodTransferFrom = "transferFrom"
)

// ERC20Methods lists the functions an ERC20 ABI must define to back the
// token endpoints.
var ERC20Methods = []string{
	MethodName, MethodSymbol, MethodDecimals, MethodTotalSupply,
	MethodBalanceOf, MethodAllowance, MethodApprove, MethodTransferFrom,
}

// erc20JSON is the standard EIP-20 interface.
//
//go:embed erc20.abi.json
var erc20JSON []byte

// ERC20ABI parses the embedded EIP-20 ABI.
func ERC20ABI() (*abi.ABI, error) {
	return ParseABI(erc20JSON)
}

// ParseABI parses either a raw ABI array or a Hardhat/Foundry artifact
// object carrying an "abi" key.
func ParseABI(data []byte) (*abi.ABI, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("ABI is empty")
	}

	if data[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil, errors.Wrap(err, "invalid artifact JSON")
		}
		if len(artifact.ABI) < 2 || artifact.ABI[0] != '[' {
			return nil, errors.New(`JSON object has no "abi" array; expected a raw ABI or a Hardhat/Foundry artifact`)
		}
		data = artifact.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "invalid ABI JSON")
	}
	if len(parsed.Methods) == 0 && len(parsed.Events) == 0 && len(parsed.Constructor.Inputs) == 0 {
		return nil, errors.New("ABI has no functions or events")
	}
	return &parsed, nil
}

// LoadABI reads an ABI file from path.
func LoadABI(path string) (*abi.ABI, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading ABI file %s", path)
	}
	parsed, err := ParseABI(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return parsed, nil
}

// LoadERC20ABI returns the ABI at path, or the embedded one when path is
// empty. Either way every ERC20 function must be present.
func LoadERC20ABI(path string) (*abi.ABI, error) {
	var (
		parsed *abi.ABI
		err    error
	)
	if path == "" {
		parsed, err = ERC20ABI()
	} else {
		parsed, err = LoadABI(path)
	}
	if err != nil {
		return nil, err
	}
	if err := RequireMethods(parsed, ERC20Methods...); err != nil {
		return nil, err
	}
	return parsed, nil
}

// RequireMethods checks that every name is a function in a.
func RequireMethods(a *abi.ABI, names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := a.Methods[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("ABI is missing functions %v", missing)
	}
	return nil
}
