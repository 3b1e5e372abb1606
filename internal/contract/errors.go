package contract

import "github.com/pkg/errors"

var (
	// ErrInvalidAddress is returned for strings that are not 0x + 40 hex digits.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidFunction is returned when a function name is empty, missing
	// from the ABI, or of the wrong mutability for the call.
	ErrInvalidFunction = errors.New("invalid contract function")

	// ErrInvalidArgument is returned when call arguments cannot be packed.
	ErrInvalidArgument = errors.New("invalid contract argument")

	// ErrNoData is returned when a call that declares outputs gets back no
	// decodable data, e.g. because the address holds no contract.
	ErrNoData = errors.New("contract returned no data")

	// ErrRPCFailure matches every *RPCError via errors.Is.
	ErrRPCFailure = errors.New("rpc failure")
)

// RPCError is a failure reported by the chain node or its transport. The
// message is the node's, unchanged.
type RPCError struct {
	Method string
	Err    error
}

func (e *RPCError) Error() string {
	return e.Method + ": " + e.Err.Error()
}

func (e *RPCError) Unwrap() error { return e.Err }

// Is reports ErrRPCFailure as matching.
func (e *RPCError) Is(target error) bool { return target == ErrRPCFailure }

func rpcErr(method string, err error) error {
	return &RPCError{Method: method, Err: err}
}
