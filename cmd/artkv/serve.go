package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/redcon"

	"github.com/AfshinJalili/artkv/internal/codec"
	"github.com/AfshinJalili/artkv/internal/keydir"
	"github.com/AfshinJalili/artkv/internal/store"
)

type serverConfig struct {
	addr                 string
	metricsAddr          string
	index                string
	maxKey               int
	maxValue             int
	compression          string
	compressionThreshold int
}

func loadServerConfig(v *viper.Viper) serverConfig {
	return serverConfig{
		addr:                 v.GetString("addr"),
		metricsAddr:          v.GetString("metrics-addr"),
		index:                v.GetString("index"),
		maxKey:               v.GetInt("max-key"),
		maxValue:             v.GetInt("max-value"),
		compression:          v.GetString("compression"),
		compressionThreshold: v.GetInt("compression-threshold"),
	}
}

func (c *serverConfig) options(logger hclog.Logger) ([]store.Option, error) {
	comp, err := codec.ParseCompression(c.compression)
	if err != nil {
		return nil, err
	}
	opts := []store.Option{
		store.WithIndex(c.index),
		store.WithMaxKeySize(c.maxKey),
		store.WithMaxValueSize(c.maxValue),
		store.WithCompression(comp),
		store.WithCompressionThreshold(c.compressionThreshold),
	}
	if logger != nil {
		opts = append(opts, store.WithLogger(logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})))
	}
	return opts, nil
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the store over the Redis protocol",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, loadServerConfig(v), logger, nil)
		},
	}
	fs := cmd.Flags()
	fs.String("addr", "127.0.0.1:6380", "listen address")
	fs.String("metrics-addr", "", "serve Prometheus metrics on this address (disabled when empty)")
	fs.String("index", keydir.KindNative, "index backend (art, plar, iradix)")
	fs.Int("max-key", 1024, "max key size in bytes")
	fs.Int("max-value", 1<<20, "max value size in bytes")
	fs.String("compression", "snappy", "compression (snappy|none)")
	fs.Int("compression-threshold", 256, "compress values of at least this many bytes")
	return cmd
}

// serve runs until ctx is done. ready, when non-nil, receives the listen
// result once the RESP listener is bound.
func serve(ctx context.Context, cfg serverConfig, logger hclog.Logger, ready chan<- error) error {
	opts, err := cfg.options(logger)
	if err != nil {
		return err
	}
	st, err := store.New(opts...)
	if err != nil {
		return err
	}

	var metricsSrv *http.Server
	if cfg.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
			st.Metrics().WritePrometheus(w)
		})
		metricsSrv = &http.Server{Addr: cfg.metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics listener failed", "addr", cfg.metricsAddr, "error", err)
			}
		}()
		logger.Info("serving metrics", "addr", cfg.metricsAddr)
	}

	srv := redcon.NewServer(cfg.addr,
		func(conn redcon.Conn, cmd redcon.Command) {
			if dispatch(st, conn, cmd.Args) {
				_ = conn.Close()
			}
		},
		func(conn redcon.Conn) bool {
			id := uuid.NewString()
			conn.SetContext(id)
			logger.Debug("connection accepted", "conn", id, "remote", conn.RemoteAddr())
			return true
		},
		func(conn redcon.Conn, err error) {
			logger.Debug("connection closed", "conn", conn.Context(), "error", err)
		},
	)

	listening := make(chan error, 1)
	done := make(chan error, 1)
	go func() { done <- srv.ListenServeAndSignal(listening) }()
	if err := <-listening; err != nil {
		if ready != nil {
			ready <- err
		}
		return err
	}
	if ready != nil {
		ready <- nil
	}
	logger.Info("listening", "addr", cfg.addr, "index", cfg.index)

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-done:
	}
	_ = srv.Close()
	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return err
}
