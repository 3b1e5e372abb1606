package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Mohsinsiddi/tokenapi/internal/chain"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load. They override the config file.
const (
	EnvConfigPath      = "TOKENAPI_CONFIG"
	EnvListenAddress   = "TOKENAPI_LISTEN"
	EnvLocalhostRPC    = "RPC_ENDPOINT_LOCALHOST"
	EnvPrivateKey      = "PRIVATE_KEY"
	EnvERC20ABIPath    = "ERC20_ABI_PATH"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogPretty       = "LOG_PRETTY"
	EnvKeyringService  = "KEYRING_SERVICE"
	EnvKeyringKey      = "KEYRING_KEY"
	EnvKeyringPassword = "KEYRING_PASSWORD"
)

// Load builds the configuration from defaults, the file at path (or
// $TOKENAPI_CONFIG when path is empty) and the environment. No file is fine;
// a named file that cannot be read is not.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.path = path
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path as YAML or JSON, chosen by extension.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	c.path = path
	return nil
}

// Path returns the file the config was loaded from or saved to.
func (c *Config) Path() string {
	return c.path
}

// Validate checks the chain list and the logger settings.
func (c *Config) Validate() error {
	seen := make(map[int64]bool, len(c.Chains))
	for i, ch := range c.Chains {
		if ch.ID <= 0 {
			return errors.Errorf("chains[%d]: id must be a positive integer, got %d", i, ch.ID)
		}
		if strings.TrimSpace(ch.RPCURL) == "" {
			return errors.Errorf("chains[%d]: rpc_url is required for chain %d", i, ch.ID)
		}
		if seen[ch.ID] {
			return errors.Errorf("chains[%d]: chain %d is configured twice", i, ch.ID)
		}
		seen[ch.ID] = true
	}
	if _, err := zerolog.ParseLevel(c.Logger.Level); err != nil {
		return errors.Errorf("logger.level: unknown level %q", c.Logger.Level)
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New("server.shutdown_timeout_seconds must not be negative")
	}
	return nil
}

// ShutdownTimeoutDuration returns the graceful shutdown budget.
func (s Server) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// Chain returns the entry for id.
func (c *Config) Chain(id int64) (ChainConfig, bool) {
	for _, ch := range c.Chains {
		if ch.ID == id {
			return ch, true
		}
	}
	return ChainConfig{}, false
}

// SetChainRPC sets the RPC URL of chain id, adding the chain if needed.
func (c *Config) SetChainRPC(id int64, rpcURL string) {
	for i := range c.Chains {
		if c.Chains[i].ID == id {
			c.Chains[i].RPCURL = rpcURL
			return
		}
	}
	c.Chains = append(c.Chains, ChainConfig{ID: id, RPCURL: rpcURL})
}

// --- helpers ---

func defaults() *Config {
	return &Config{
		Server: Server{
			ListenAddress:   DefaultListenAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Logger: Logger{Level: DefaultLogLevel},
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvListenAddress); ok && v != "" {
		c.Server.ListenAddress = v
	}
	if v, ok := os.LookupEnv(EnvLocalhostRPC); ok && v != "" {
		c.SetChainRPC(chain.LocalChainID, v)
	}
	if v, ok := os.LookupEnv(EnvPrivateKey); ok {
		c.Signer.PrivateKey = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv(EnvERC20ABIPath); ok && v != "" {
		c.ERC20ABIPath = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Logger.Level = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvLogPretty); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvLogPretty)
		}
		c.Logger.PrettyPrint = b
	}
	if v, ok := os.LookupEnv(EnvKeyringService); ok && v != "" {
		c.Signer.KeyringService = v
	}
	if v, ok := os.LookupEnv(EnvKeyringKey); ok && v != "" {
		c.Signer.KeyringKey = v
	}
	if v, ok := os.LookupEnv(EnvKeyringPassword); ok {
		c.Signer.KeyringPassword = v
	}
	return nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config")
	}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
