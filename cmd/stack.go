package cmd

import (
	"context"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/Mohsinsiddi/tokenapi/internal/config"
	"github.com/Mohsinsiddi/tokenapi/internal/wallet"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// newRegistry registers every configured chain.
func newRegistry(ctx context.Context, c *config.Config, dial chain.Dialer) (*chain.Registry, error) {
	reg := chain.NewRegistry(dial)
	for _, ch := range c.Chains {
		if err := reg.Register(ctx, ch.ID, ch.RPCURL, ch.Meta()); err != nil {
			reg.Close()
			return nil, err
		}
	}
	return reg, nil
}

// openKeystore opens the keychain named by the signer config.
var openKeystore = func(s config.Signer) (keyRetriever, error) {
	return wallet.OpenKeystore(wallet.KeystoreOptions{
		Service:      s.KeyringService,
		FileDir:      s.KeyringFileDir,
		FilePassword: s.KeyringPassword,
	})
}

type keyRetriever interface {
	Retrieve(ref string) (string, error)
}

// defaultSigningKey returns the key used when a write carries none: the
// configured raw key, else the keychain item named by keyring_key. Both may
// be absent, in which case writes must bring their own key.
func defaultSigningKey(s config.Signer) (string, error) {
	if s.PrivateKey != "" {
		if _, err := wallet.ParseKey(s.PrivateKey); err != nil {
			return "", errors.Wrap(err, "default signing key")
		}
		return s.PrivateKey, nil
	}
	if s.KeyringKey == "" {
		return "", nil
	}

	ks, err := openKeystore(s)
	if err != nil {
		return "", err
	}
	key, err := ks.Retrieve(s.KeyringKey)
	if err != nil {
		return "", err
	}
	if _, err := wallet.ParseKey(key); err != nil {
		return "", errors.Wrapf(err, "keychain item %q", s.KeyringKey)
	}
	log.Debug().Str("keyring_key", s.KeyringKey).Msg("Loaded default signing key from keychain")
	return key, nil
}
