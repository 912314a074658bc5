package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ryanwaits/sbtc/internal/metrics"
	"github.com/ryanwaits/sbtc/internal/sweep/bitcoin"
	"github.com/ryanwaits/sbtc/internal/sweep/model"
	"github.com/ryanwaits/sbtc/internal/sweep/repository/clickhouse"
	"github.com/ryanwaits/sbtc/internal/sweep/service"
	"github.com/ryanwaits/sbtc/internal/sweep/validation"
	"go.uber.org/zap"
)

var errCandidatesRejected = errors.New("one or more candidates were rejected")

type config struct {
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"SWEEP_VALIDATOR_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network         model.Network `long:"network" env:"SWEEP_VALIDATOR_NETWORK" description:"bitcoin network name" default:"mainnet"`
	RPCURL          string        `long:"rpc-url" env:"SWEEP_VALIDATOR_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser         string        `long:"rpc-user" env:"SWEEP_VALIDATOR_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword     string        `long:"rpc-password" env:"SWEEP_VALIDATOR_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRateLimit    int           `long:"rpc-rate-limit" env:"SWEEP_VALIDATOR_RPC_RATE_LIMIT" description:"maximum Bitcoin RPC calls per second; 0 disables the limit" default:"0"`
	SignerPublicKey string        `long:"signer-public-key" env:"SWEEP_VALIDATOR_SIGNER_PUBLIC_KEY" description:"hex encoded compressed public key of this signer" required:"true"`
	Candidates      string        `long:"candidates" env:"SWEEP_VALIDATOR_CANDIDATES" description:"path to a JSON file of candidate sweep transactions" required:"true"`
	Workers         int           `long:"workers" env:"SWEEP_VALIDATOR_WORKERS" description:"number of candidates validated concurrently" default:"4"`
	WatchInterval   time.Duration `long:"watch-interval" env:"SWEEP_VALIDATOR_WATCH_INTERVAL" description:"re-validate on every new chain tip, polling at this interval; 0 validates once"`
	MetricsAddr     string        `long:"metrics-addr" env:"SWEEP_VALIDATOR_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	err = run(ctx, cfg, logger)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	case errors.Is(err, errCandidatesRejected):
		logger.Warn("sweep validation finished with rejections")
		_ = logger.Sync()
		os.Exit(1)
	default:
		logger.Fatal("sweep validator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	signer, err := model.ParsePublicKeyHex(cfg.SignerPublicKey)
	if err != nil {
		return fmt.Errorf("signer public key: %w", err)
	}
	candidates, err := readCandidates(cfg.Candidates)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(cfg.Network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()
	if err := repo.Ping(ctx); err != nil {
		return err
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init btc rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	tips, err := bitcoin.NewChainTipSource(bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network), cfg.RPCRateLimit))
	if err != nil {
		return err
	}
	if err := tips.EnsureNetwork(ctx, cfg.Network); err != nil {
		return err
	}

	validator, err := validation.NewValidator(repo, signer, metrics.NewSweepValidator(), logger)
	if err != nil {
		return err
	}
	svc, err := service.NewSweepService(validator, tips, metrics.NewSweepService(), cfg.Workers, logger)
	if err != nil {
		return err
	}

	if cfg.WatchInterval > 0 {
		return svc.Watch(ctx, candidates, cfg.WatchInterval, func(results []service.Result) error {
			reportResults(results, logger)
			return nil
		})
	}

	results, err := svc.ValidateCandidates(ctx, candidates)
	if err != nil {
		return err
	}
	if rejected := reportResults(results, logger); rejected > 0 {
		return errCandidatesRejected
	}
	return nil
}

func readCandidates(path string) ([]service.Candidate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open candidates file: %w", err)
	}
	defer f.Close()

	candidates, err := service.DecodeCandidates(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return candidates, nil
}

// reportResults logs one line per candidate and returns how many were rejected.
func reportResults(results []service.Result, logger *zap.Logger) int {
	rejected := 0
	for _, r := range results {
		fields := []zap.Field{
			zap.Int("candidate", r.Index),
			zap.Stringer("txid", r.TxID),
			zap.Uint64("chain_tip_height", r.ChainTip.Height),
		}
		if r.Accepted() {
			logger.Info("candidate accepted", fields...)
			continue
		}
		rejected++
		logger.Warn("candidate rejected", append(fields, zap.String("reason", r.Reason()), zap.Error(r.Err))...)
	}
	return rejected
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
