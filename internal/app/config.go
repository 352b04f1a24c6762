package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"jupbuy/internal/validation"
)

const (
	// PublicAPIBase serves requests carrying an API key.
	PublicAPIBase = "https://api.jup.ag"
	// LiteAPIBase serves keyless requests.
	LiteAPIBase = "https://lite-api.jup.ag"

	envPrefix = "JUPBUY"
)

// Config holds runtime wiring options for building the app. It is resolved
// once by Load and not modified afterwards.
type Config struct {
	RPCURL      string       `mapstructure:"rpc_url" validate:"omitempty,url"`
	OutputMint  string       `mapstructure:"output_mint" validate:"omitempty,pubkey"`
	KeyFile     string       `mapstructure:"key_file" validate:"required"`
	APIKey      string       `mapstructure:"api_key"`
	APIBaseURL  string       `mapstructure:"api_base_url" validate:"required,url"`
	ExplorerURL string       `mapstructure:"explorer_url" validate:"required,url"`
	Commitment  string       `mapstructure:"commitment" validate:"oneof=processed confirmed finalized"`
	Timeouts    Timeouts     `mapstructure:"timeouts"`
	LogLevel    string       `mapstructure:"log_level" validate:"oneof=debug info warn error off"`
	HTTP        *http.Client `mapstructure:"-" validate:"-"` // optional; defaults to http.DefaultClient
}

// Require fails when any of the named settings is empty. rpc_url and
// output_mint are only needed by the commands that trade, so Load accepts
// them unset.
func (c Config) Require(keys ...string) error {
	values := map[string]string{
		"rpc_url":     c.RPCURL,
		"output_mint": c.OutputMint,
	}
	for _, k := range keys {
		v, known := values[k]
		if !known {
			return fmt.Errorf("unknown setting %q", k)
		}
		if v == "" {
			return fmt.Errorf("%s is required (set it in jupbuy.yaml or %s_%s)", k, envPrefix, strings.ToUpper(k))
		}
	}
	return nil
}

// Timeouts bound each outbound call.
type Timeouts struct {
	Quote time.Duration `mapstructure:"quote" validate:"gt=0"`
	Swap  time.Duration `mapstructure:"swap" validate:"gt=0"`
	RPC   time.Duration `mapstructure:"rpc" validate:"gt=0"`
}

// NewViper returns a viper instance with defaults, environment bindings and,
// when found, the config file. An explicit configFile must exist; otherwise
// jupbuy.yaml is looked up in the working directory and $HOME/.jupbuy.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", envPrefix+"_API_KEY", "JUPITER_API_KEY"); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		return v, nil
	}

	v.SetConfigName("jupbuy")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.jupbuy")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

// Every key gets a default so that AutomaticEnv values reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("rpc_url", "")
	v.SetDefault("output_mint", "")
	v.SetDefault("key_file", "id.json")
	v.SetDefault("api_key", "")
	v.SetDefault("api_base_url", "")
	v.SetDefault("explorer_url", "https://solscan.io/tx")
	v.SetDefault("commitment", "confirmed")
	v.SetDefault("timeouts.quote", 20*time.Second)
	v.SetDefault("timeouts.swap", 30*time.Second)
	v.SetDefault("timeouts.rpc", 30*time.Second)
	v.SetDefault("log_level", "info")
}

// Load resolves v into a validated Config. The Jupiter base URL is chosen
// here when not set explicitly: the keyed host with an API key, the lite
// host without one.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = LiteAPIBase
		if cfg.APIKey != "" {
			cfg.APIBaseURL = PublicAPIBase
		}
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if err := validation.New().Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
