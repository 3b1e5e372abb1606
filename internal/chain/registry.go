package chain

import (
	"context"
	"sort"

	"github.com/pkg/errors"
)

// ErrChainNotFound is returned when no client was registered for a chain id.
var ErrChainNotFound = errors.New("chain not found")

// ErrChainExists is returned when a chain id is registered twice.
var ErrChainExists = errors.New("chain already registered")

// Endpoint is a registered chain: its metadata, RPC URL and client.
type Endpoint struct {
	Chain  Chain
	RPCURL string
	Client Client
}

// ID returns the endpoint's chain id.
func (e *Endpoint) ID() int64 { return e.Chain.ChainID }

// Registry maps chain ids to endpoints. It is filled once at startup and is
// read-only afterwards, so lookups take no lock.
type Registry struct {
	dial Dialer
	byID map[int64]*Endpoint
}

// NewRegistry creates an empty registry. A nil dialer uses DialEthereum.
func NewRegistry(dial Dialer) *Registry {
	if dial == nil {
		dial = DialEthereum
	}
	return &Registry{
		dial: dial,
		byID: make(map[int64]*Endpoint),
	}
}

// Register dials rpcURL and stores the client under id. Empty metadata fields
// are filled from the built-in chain table.
func (r *Registry) Register(ctx context.Context, id int64, rpcURL string, meta Chain) error {
	if id <= 0 {
		return errors.Errorf("invalid chain id %d", id)
	}
	if rpcURL == "" {
		return errors.Errorf("chain %d: rpc url is required", id)
	}
	if _, ok := r.byID[id]; ok {
		return errors.Wrapf(ErrChainExists, "chain %d", id)
	}

	client, err := r.dial(ctx, rpcURL)
	if err != nil {
		return errors.Wrapf(err, "chain %d", id)
	}

	r.byID[id] = &Endpoint{
		Chain:  Describe(id, meta),
		RPCURL: rpcURL,
		Client: client,
	}
	return nil
}

// Resolve returns the endpoint registered for id.
func (r *Registry) Resolve(id int64) (*Endpoint, error) {
	ep, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrChainNotFound, "chain id %d", id)
	}
	return ep, nil
}

// All returns every registered endpoint ordered by chain id.
func (r *Registry) All() []*Endpoint {
	out := make([]*Endpoint, 0, len(r.byID))
	for _, ep := range r.byID {
		out = append(out, ep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Len returns the number of registered chains.
func (r *Registry) Len() int { return len(r.byID) }

// Close closes every registered client.
func (r *Registry) Close() {
	for _, ep := range r.byID {
		ep.Client.Close()
	}
}
