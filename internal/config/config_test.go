package config

import (
	"testing"
	"time"

	"github.com/gabapcia/streamkit/internal/pkg/validator"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "devnet", cfg.NetworkName)
		assert.Equal(t, "confirmed", cfg.Commitment)
		assert.Equal(t, rpc.CommitmentConfirmed, cfg.CommitmentType())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "streamkit", cfg.ServiceName)
		assert.False(t, cfg.OTELEnabled)
		assert.Equal(t, 30*time.Second, cfg.RPCTimeout)
		assert.Equal(t, 2, cfg.RPCRetryMax)
		assert.Equal(t, 2*time.Second, cfg.ConfirmPollInterval)
		assert.Equal(t, 24*time.Hour, cfg.SubmissionTTL)
		assert.False(t, cfg.Redis.Enabled())
	})

	t.Run("should read prefixed variables", func(t *testing.T) {
		t.Setenv("STREAMKIT_NETWORK", "mainnet")
		t.Setenv("STREAMKIT_COMMITMENT", "finalized")
		t.Setenv("STREAMKIT_RPC_TIMEOUT", "5s")
		t.Setenv("STREAMKIT_REDIS_ADDR", "localhost:6379")
		t.Setenv("STREAMKIT_REDIS_DB", "2")
		t.Setenv("STREAMKIT_BATCH_CONCURRENCY", "4")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "mainnet", cfg.NetworkName)
		assert.Equal(t, rpc.CommitmentFinalized, cfg.CommitmentType())
		assert.Equal(t, 5*time.Second, cfg.RPCTimeout)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, 4, cfg.BatchConcurrency)
	})

	t.Run("should reject an unknown network", func(t *testing.T) {
		t.Setenv("STREAMKIT_NETWORK", "moonnet")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject an invalid program id", func(t *testing.T) {
		t.Setenv("STREAMKIT_PROGRAM_ID", "not-a-key")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject a malformed duration", func(t *testing.T) {
		t.Setenv("STREAMKIT_RPC_TIMEOUT", "soon")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestNetworkFor(t *testing.T) {
	t.Run("should know every cluster", func(t *testing.T) {
		for name, url := range map[string]string{
			"mainnet": rpc.MainNetBeta_RPC,
			"devnet":  rpc.DevNet_RPC,
			"testnet": rpc.TestNet_RPC,
			"local":   rpc.LocalNet_RPC,
		} {
			n, err := NetworkFor(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, n.Name)
			assert.Equal(t, url, n.RPCURL)
			assert.False(t, n.ProgramID.IsZero())
		}
	})

	t.Run("should use the mainnet program on mainnet", func(t *testing.T) {
		n, err := NetworkFor("mainnet")
		require.NoError(t, err)
		assert.Equal(t, mainnetProgramID, n.ProgramID.String())
		assert.Equal(t, treasury, n.Stream().Treasury.String())
		assert.Equal(t, feeOracle, n.Stream().FeeOracle.String())
	})

	t.Run("should fail for an unknown cluster", func(t *testing.T) {
		_, err := NetworkFor("moonnet")
		assert.ErrorIs(t, err, ErrUnknownNetwork)
	})

	t.Run("should hand out independent values", func(t *testing.T) {
		a, err := NetworkFor("devnet")
		require.NoError(t, err)
		a.RPCURL = "http://changed"

		b, err := NetworkFor("devnet")
		require.NoError(t, err)
		assert.Equal(t, rpc.DevNet_RPC, b.RPCURL)
	})
}

func TestConfigNetwork(t *testing.T) {
	t.Run("should apply overrides", func(t *testing.T) {
		cfg := Config{
			NetworkName: "devnet",
			RPCURL:      "http://localhost:8899",
			ProgramID:   mainnetProgramID,
		}

		n, err := cfg.Network()
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8899", n.RPCURL)
		assert.Equal(t, mainnetProgramID, n.ProgramID.String())
	})
}
