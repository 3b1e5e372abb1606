package wallet

import (
	"runtime"

	"github.com/99designs/keyring"
	"github.com/pkg/errors"
)

// DefaultKeychainService is the keyring service name used when none is set.
const DefaultKeychainService = "tokenapi"

// Keystore reads signing keys from the OS keychain.
type Keystore struct {
	ring keyring.Keyring
}

// KeystoreOptions configures OpenKeystore.
type KeystoreOptions struct {
	Service      string
	FileDir      string // file backend directory; keyring default when empty
	FilePassword string // password for the file backend
}

// OpenKeystore opens the OS keychain. On Linux without a desktop session it
// falls back to the encrypted file backend.
func OpenKeystore(opts KeystoreOptions) (*Keystore, error) {
	if opts.Service == "" {
		opts.Service = DefaultKeychainService
	}

	cfg := keyring.Config{
		ServiceName:              opts.Service,
		KeychainTrustApplication: true,
		FileDir:                  opts.FileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(opts.FilePassword),
	}
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "opening keyring")
	}
	return &Keystore{ring: ring}, nil
}

// NewKeystore wraps an already opened keyring.
func NewKeystore(ring keyring.Keyring) *Keystore {
	return &Keystore{ring: ring}
}

// Store saves a hex private key under ref.
func (k *Keystore) Store(ref, hexKey string) error {
	if _, err := ParseKey(hexKey); err != nil {
		return err
	}
	if err := k.ring.Set(keyring.Item{Key: ref, Data: []byte(hexKey)}); err != nil {
		return errors.Wrap(err, "keychain store")
	}
	return nil
}

// Retrieve returns the hex private key stored under ref.
func (k *Keystore) Retrieve(ref string) (string, error) {
	item, err := k.ring.Get(ref)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", errors.Wrapf(ErrMissingKey, "keychain item %q not found", ref)
	}
	if err != nil {
		return "", errors.Wrap(err, "keychain retrieve")
	}
	return string(item.Data), nil
}
