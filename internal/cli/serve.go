package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mshaler/isogrid/internal/server"
	"github.com/mshaler/isogrid/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API",
		Long: `Run the layout HTTP API.

Serves layout computation and saved layout documents over JSON. The cache
backend (file, redis, none) and the document store (memory, or MongoDB when
store.mongo_uri is set) come from ~/.config/isogrid/config.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close(context.Background())

	if addr == "" {
		addr = c.Config.Server.Addr
	}
	srv := server.New(server.Config{Addr: addr}, runner, st, c.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}

// newStore selects the document store backend from config.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if uri := c.Config.Store.MongoURI; uri != "" {
		c.Logger.Info("using MongoDB document store")
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        uri,
			Database:   c.Config.Store.MongoDatabase,
			Collection: c.Config.Store.MongoCollection,
		})
	}
	c.Logger.Debug("using in-memory document store")
	return store.NewMemoryStore(), nil
}
