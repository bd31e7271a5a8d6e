package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dvora/yoman/internal/api"
	"github.com/dvora/yoman/internal/db"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the yoman backend server",
	Long: `Run the sqlite-backed HTTP server the planner talks to.

Configuration comes from environment variables:
  YOMAN_LISTEN_ADDR  Listen address (default :3001)
  YOMAN_DB_PATH      Database path (default ./data/yoman.db)
  YOMAN_DVORUSH      Comma-separated dvorush checklist seeded onto new days
  YOMAN_LOG_FORMAT   "json" (default) or "text"
  YOMAN_LOG_LEVEL    "debug", "info" (default), "warn", "error"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := api.LoadConfig()

		var level slog.Level
		switch strings.ToLower(cfg.LogLevel) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if strings.ToLower(cfg.LogFormat) == "text" {
			handler = slog.NewTextHandler(os.Stderr, opts)
		} else {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		}
		slog.SetDefault(slog.New(handler))

		store, err := db.Open(cfg.DBPath)
		if err != nil {
			slog.Error("open db", "err", err)
			return err
		}
		defer store.Close()

		srv := api.NewServer(cfg, store)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Start(); err != nil {
			slog.Error("start server", "err", err)
			return err
		}
		slog.Info("server started", "addr", cfg.ListenAddr)

		<-ctx.Done()
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
