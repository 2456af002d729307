package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FilippoRanza/simplegraph/internal/api"
	"github.com/FilippoRanza/simplegraph/pkg/cache"
	"github.com/FilippoRanza/simplegraph/pkg/store"
)

// Environment variables consumed by serve.
const (
	envRedisAddr = "SIMPLEGRAPH_REDIS_ADDR"
	envMongoURI  = "SIMPLEGRAPH_MONGO_URI"
)

const shutdownGrace = 10 * time.Second

// serveCommand creates the serve command: run the HTTP API. Without
// SIMPLEGRAPH_MONGO_URI and SIMPLEGRAPH_REDIS_ADDR everything runs
// in-process, which is enough for local use.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		mongoDB string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simplegraph HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			st, err := newStore(ctx, mongoDB)
			if err != nil {
				return err
			}
			defer func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()
				if err := st.Close(closeCtx); err != nil {
					logger.Warn("close store", "err", err)
				}
			}()

			artifacts, err := newServeCache(ctx, noCache)
			if err != nil {
				return err
			}
			defer artifacts.Close()

			server := &http.Server{
				Addr:              addr,
				Handler:           api.NewServer(st, artifacts, logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", appName, "mongodb database name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// newStore picks the document store: MongoDB when SIMPLEGRAPH_MONGO_URI
// is set, in-memory otherwise.
func newStore(ctx context.Context, database string) (store.Store, error) {
	uri := os.Getenv(envMongoURI)
	if uri == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, uri, database, "graphs")
}

// newServeCache picks the render cache: Redis when
// SIMPLEGRAPH_REDIS_ADDR is set, the XDG file cache otherwise.
func newServeCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if addr := os.Getenv(envRedisAddr); addr != "" {
		return cache.NewRedisCache(ctx, addr)
	}
	return newCache(false)
}
