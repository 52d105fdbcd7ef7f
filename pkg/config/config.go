package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Ranking struct {
		Chain           string        `yaml:"chain"`
		TrendingLimit   int           `yaml:"trending_limit"`
		VolumeThreshold float64       `yaml:"volume_threshold"`
		CacheTTL        time.Duration `yaml:"cache_ttl"`
	} `yaml:"ranking"`
	Ledger struct {
		Path string `yaml:"path"`
	} `yaml:"ledger"`
	Dexscreener struct {
		ProfilesURL string        `yaml:"profiles_url"`
		TokensURL   string        `yaml:"tokens_url"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"dexscreener"`
	Helius struct {
		APIKey  string        `yaml:"api_key"`
		RPCURL  string        `yaml:"rpc_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"helius"`
	Solscan struct {
		MetaURL string        `yaml:"meta_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"solscan"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PORT"); v != "" {
		if p, perr := strconv.Atoi(v); perr == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("CHAIN"); v != "" {
		c.Ranking.Chain = v
	}
	if v := os.Getenv("LEDGER_FILE"); v != "" {
		c.Ledger.Path = v
	}
	if v := os.Getenv("HELIUS_API_KEY"); v != "" {
		c.Helius.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Enabled = true
		c.Redis.Addr = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3001
	}
	if c.Ranking.Chain == "" {
		c.Ranking.Chain = "solana"
	}
	if c.Ranking.TrendingLimit == 0 {
		c.Ranking.TrendingLimit = 30
	}
	if c.Ranking.VolumeThreshold == 0 {
		c.Ranking.VolumeThreshold = 200_000
	}
	if c.Ledger.Path == "" {
		c.Ledger.Path = "votes.json"
	}
	if c.Dexscreener.ProfilesURL == "" {
		c.Dexscreener.ProfilesURL = "https://api.dexscreener.com/token-profiles/latest/v1"
	}
	if c.Dexscreener.TokensURL == "" {
		c.Dexscreener.TokensURL = "https://api.dexscreener.com/tokens/v1"
	}
	if c.Helius.RPCURL == "" {
		c.Helius.RPCURL = "https://mainnet.helius-rpc.com"
	}
	if c.Solscan.MetaURL == "" {
		c.Solscan.MetaURL = "https://api.solscan.io/token/meta"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Ranking.TrendingLimit <= 0 {
		return fmt.Errorf("ranking.trending_limit must be positive")
	}
	if c.Ranking.VolumeThreshold < 0 {
		return fmt.Errorf("ranking.volume_threshold cannot be negative")
	}
	if c.Ledger.Path == "" {
		return fmt.Errorf("ledger.path is required")
	}
	return nil
}
