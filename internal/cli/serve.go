package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketch3d/pkg/cache"
	"github.com/matzehuels/sketch3d/pkg/server"
	"github.com/matzehuels/sketch3d/pkg/store"
)

const shutdownTimeout = 10 * time.Second

type serveOpts struct {
	addr    string
	redis   string
	mongo   string
	noCache bool
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scene rendering HTTP server",
		Long: `Run an HTTP server exposing scene storage and rendering.

Scenes are kept in memory unless --mongo points at a MongoDB instance.
Render results are cached on disk unless --redis points at a Redis
instance, or --no-cache disables caching entirely.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for the render cache (host:port)")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "mongodb uri for scene storage")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable render caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	st, err := c.newServeStore(ctx, opts)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	rc, err := c.newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer rc.Close()

	srv := server.New(
		server.WithStore(st),
		server.WithCache(rc),
		server.WithLogger(logger),
	)

	httpSrv := &http.Server{
		Addr:    opts.addr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// newServeStore picks the scene store backend from flags.
func (c *CLI) newServeStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	logger := loggerFromContext(ctx)

	if opts.mongo != "" {
		logger.Debug("using mongodb scene store", "uri", opts.mongo)
		return store.NewMongoStore(ctx, store.MongoConfig{URI: opts.mongo})
	}

	logger.Debug("using in-memory scene store")
	return store.NewMemoryStore(), nil
}

// newServeCache picks the render cache backend from flags.
func (c *CLI) newServeCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	logger := loggerFromContext(ctx)

	if opts.noCache {
		logger.Debug("render caching disabled")
		return cache.NewNullCache(), nil
	}

	if opts.redis != "" {
		logger.Debug("using redis render cache", "addr", opts.redis)
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redis})
		if err != nil {
			return nil, err
		}
		return cache.Instrument(rc, "render"), nil
	}

	dir, err := cacheDir()
	if err != nil {
		logger.Warn("cache unavailable, rendering without cache", "error", err)
		return cache.NewNullCache(), nil
	}
	logger.Debug("using file render cache", "dir", dir)
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warn("cache unavailable, rendering without cache", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.Instrument(fc, "render"), nil
}
