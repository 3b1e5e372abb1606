package contract

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Artifact is a compiled contract: its ABI and deployment bytecode.
type Artifact struct {
	Name     string
	ABI      *abi.ABI
	Bytecode []byte
}

// LoadArtifact reads a Hardhat or Foundry artifact JSON file. It fails when
// the file has no "abi" array or no deployable bytecode.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read artifact file")
	}
	if len(data) == 0 {
		return nil, errors.Errorf("artifact file is empty: %s", path)
	}

	var raw struct {
		ContractName string          `json:"contractName"`
		ABI          json.RawMessage `json:"abi"`
		Bytecode     json.RawMessage `json:"bytecode"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "invalid artifact JSON")
	}
	if len(raw.ABI) < 2 || raw.ABI[0] != '[' {
		return nil, errors.Errorf(`artifact has no valid "abi" array: %s`, path)
	}

	parsed, err := ParseABI(raw.ABI)
	if err != nil {
		return nil, errors.Wrap(err, "parsing artifact ABI")
	}

	if len(raw.Bytecode) == 0 {
		return nil, errors.Errorf("artifact has no bytecode; cannot deploy an interface or abstract contract: %s", path)
	}
	bcHex, err := extractBytecodeHex(raw.Bytecode)
	if err != nil {
		return nil, errors.Wrap(err, "extracting bytecode from artifact")
	}
	if bcHex == "" || bcHex == "0x" {
		return nil, errors.Errorf("artifact bytecode is empty; cannot deploy an interface or abstract contract: %s", path)
	}
	if !strings.HasPrefix(bcHex, "0x") {
		bcHex = "0x" + bcHex
	}
	code, err := hexutil.Decode(bcHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid bytecode hex in artifact")
	}

	return &Artifact{Name: raw.ContractName, ABI: parsed, Bytecode: code}, nil
}

// extractBytecodeHex handles both artifact layouts:
//   - Hardhat:  "bytecode": "0x608060..."
//   - Foundry:  "bytecode": {"object": "0x608060..."}
func extractBytecodeHex(raw json.RawMessage) (string, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strings.TrimSpace(str), nil
	}

	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Object != "" {
		return strings.TrimSpace(obj.Object), nil
	}

	return "", errors.New(`bytecode field is neither a hex string nor a {"object":"0x..."} object`)
}
