package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/flexxoo/website/domain/email"
	"github.com/flexxoo/website/domain/leads"
	"github.com/flexxoo/website/domain/tour"
	"github.com/flexxoo/website/internal/config"
	"github.com/flexxoo/website/internal/handlers"
	"github.com/flexxoo/website/internal/server"
	"github.com/flexxoo/website/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website",
	Long:  "Start the HTTP server for the marketing pages, lead forms, product tour and JSON API.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fx.New(serveOptions()...).Run()
	},
}

func serveOptions() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,

		// Domain modules
		tour.Module,
		email.Module,
		leads.Module,

		// HTTP routes
		handlers.Module,
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
