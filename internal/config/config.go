// Package config loads the streamkit configuration from the environment.
//
// Variables use the STREAMKIT prefix, e.g. STREAMKIT_NETWORK=mainnet or
// STREAMKIT_REDIS_ADDR=localhost:6379.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/streamkit/internal/pkg/validator"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "STREAMKIT"

// Redis configures the optional submission guard store. An empty Addr
// disables the guard.
type Redis struct {
	Addr     string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

// Enabled reports whether a Redis server is configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// Config is the process configuration.
type Config struct {
	NetworkName string `envconfig:"NETWORK" default:"devnet" validate:"oneof=mainnet devnet testnet local"`
	RPCURL      string `envconfig:"RPC_URL" validate:"omitempty,url"`
	ProgramID   string `envconfig:"PROGRAM_ID" validate:"omitempty,pubkey"`
	Commitment  string `envconfig:"COMMITMENT" default:"confirmed" validate:"oneof=processed confirmed finalized"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"streamkit" validate:"required"`
	OTELEnabled bool   `envconfig:"OTEL_ENABLED" default:"false"`

	RPCTimeout          time.Duration `envconfig:"RPC_TIMEOUT" default:"30s" validate:"gt=0"`
	RPCRetryMax         int           `envconfig:"RPC_RETRY_MAX" default:"2" validate:"gte=0"`
	ConfirmPollInterval time.Duration `envconfig:"CONFIRM_POLL_INTERVAL" default:"2s" validate:"gt=0"`
	BatchConcurrency    int           `envconfig:"BATCH_CONCURRENCY" default:"0" validate:"gte=0"`

	Redis         Redis         `envconfig:"REDIS"`
	SubmissionTTL time.Duration `envconfig:"SUBMISSION_TTL" default:"24h" validate:"gt=0"`
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// CommitmentType returns the configured commitment level.
func (c Config) CommitmentType() rpc.CommitmentType {
	return rpc.CommitmentType(c.Commitment)
}

// Network resolves the configured network, applying the RPC URL and program
// id overrides.
func (c Config) Network() (Network, error) {
	n, err := NetworkFor(c.NetworkName)
	if err != nil {
		return Network{}, err
	}

	if c.RPCURL != "" {
		n.RPCURL = c.RPCURL
	}
	if c.ProgramID != "" {
		if n.ProgramID, err = parseKey("program id", c.ProgramID); err != nil {
			return Network{}, err
		}
	}

	return n, nil
}
