package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/streamkit/internal/config"
	"github.com/gabapcia/streamkit/internal/handlers/cli"
	"github.com/gabapcia/streamkit/internal/infra/ledger/solanarpc"
	"github.com/gabapcia/streamkit/internal/infra/storage/redis"
	"github.com/gabapcia/streamkit/internal/pkg/logger"
	"github.com/gabapcia/streamkit/internal/pkg/telemetry"
	"github.com/gabapcia/streamkit/internal/pkg/transport/http"
	"github.com/gabapcia/streamkit/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/streamkit/pkg/solanastream"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	network, err := cfg.Network()
	if err != nil {
		return err
	}

	if cfg.OTELEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if shutdownErr := shutdown(flushCtx); shutdownErr != nil && err == nil {
				err = shutdownErr
			}
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	httpClient := http.NewStandardClient(
		http.WithTimeout(cfg.RPCTimeout),
		http.WithRetryMax(cfg.RPCRetryMax),
		http.WithLogger(logger.Base()),
	)

	ledger := solanarpc.NewLedger(
		jsonrpc.NewClient(httpClient, network.RPCURL),
		solanarpc.WithCommitment(cfg.CommitmentType()),
		solanarpc.WithPollInterval(cfg.ConfirmPollInterval),
		solanarpc.WithLogger(logger.Base()),
	)

	opts := []solanastream.Option{
		solanastream.WithLogger(logger.Base()),
		solanastream.WithBatchConcurrency(cfg.BatchConcurrency),
	}

	if cfg.Redis.Enabled() {
		guard, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithClaimTTL(cfg.SubmissionTTL),
		)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer guard.Close()

		opts = append(opts, solanastream.WithSubmissionGuard(guard))
	}

	logger.Info(ctx, "streamkit configured",
		"network", network.Name,
		"commitment", cfg.Commitment,
		"submission_guard", cfg.Redis.Enabled(),
	)

	svc := solanastream.New(ledger, network.Stream(), opts...)

	return cli.Run(ctx, svc, loadSigner)
}

func loadSigner(path string) (solanastream.Signer, error) {
	return solanastream.LoadKeypairSigner(path)
}
