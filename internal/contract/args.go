package contract

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// CoerceArgs converts string arguments into the Go values abi.Pack expects
// for each input type. Only scalar types are supported.
func CoerceArgs(inputs abi.Arguments, raw []string) ([]interface{}, error) {
	if len(raw) != len(inputs) {
		return nil, errors.Wrapf(ErrInvalidArgument, "expected %d arguments, got %d", len(inputs), len(raw))
	}

	out := make([]interface{}, len(inputs))
	for i, in := range inputs {
		v, err := coerce(in.Type, strings.TrimSpace(raw[i]))
		if err != nil {
			name := in.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			return nil, errors.Wrapf(ErrInvalidArgument, "argument %s (%s): %v", name, in.Type.String(), err)
		}
		out[i] = v
	}
	return out, nil
}

func coerce(t abi.Type, val string) (interface{}, error) {
	switch t.T {
	case abi.StringTy:
		return val, nil

	case abi.AddressTy:
		addr, err := ParseAddress(val)
		if err != nil {
			return nil, err
		}
		return addr, nil

	case abi.BoolTy:
		switch strings.ToLower(val) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, errors.Errorf("invalid bool %q", val)

	case abi.UintTy, abi.IntTy:
		n, ok := new(big.Int).SetString(val, 0)
		if !ok {
			return nil, errors.Errorf("invalid integer %q", val)
		}
		return sizedInt(t, n)

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(val)
		if err != nil {
			return nil, err
		}
		if len(b) > t.Size {
			return nil, errors.Errorf("%d bytes do not fit bytes%d", len(b), t.Size)
		}
		if t.Size == 32 {
			return common.BytesToHash(common.LeftPadBytes(b, 32)), nil
		}
		return nil, errors.Errorf("bytes%d is not supported", t.Size)

	case abi.BytesTy:
		return hexutil.Decode(val)
	}
	return nil, errors.Errorf("type %s is not supported", t.String())
}

// sizedInt returns n as the exact Go type go-ethereum maps t to.
func sizedInt(t abi.Type, n *big.Int) (interface{}, error) {
	if t.T == abi.UintTy && n.Sign() < 0 {
		return nil, errors.Errorf("negative value %s for %s", n, t.String())
	}
	bits, mag := t.Size, n
	if t.T == abi.IntTy {
		bits--
		if n.Sign() < 0 {
			mag = new(big.Int).Add(n, big.NewInt(1)) // -2^(k-1) fits in k bits
		}
	}
	if mag.BitLen() > bits {
		return nil, errors.Errorf("value %s overflows %s", n, t.String())
	}

	if t.T == abi.UintTy {
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		case 64:
			return n.Uint64(), nil
		}
		return n, nil
	}

	switch t.Size {
	case 8:
		return int8(n.Int64()), nil
	case 16:
		return int16(n.Int64()), nil
	case 32:
		return int32(n.Int64()), nil
	case 64:
		return n.Int64(), nil
	}
	return n, nil
}
