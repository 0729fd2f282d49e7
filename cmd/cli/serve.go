package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/idahoesports/site/internal/server"
	"github.com/idahoesports/site/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serve the contact form endpoint, the championship results API and the health check until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return runServe(addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides HTTP_ADDRESS)")

	return cmd
}

func runServe(addr string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	container, err := loadContainer()
	if err != nil {
		return err
	}

	cfg := container.GetConfig()
	if addr == "" {
		addr = cfg.HTTPAddress
	}

	deps, err := container.BuildSiteDependencies(ctx)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		deps.Close(shutdownCtx)
	}()

	app := server.NewHTTPServer(server.HTTPServerDependencies{
		ContactController:   deps.ContactController,
		ChampionsController: deps.ChampionsController,
	})

	log.Info().
		Str("addr", addr).
		Str("version", version.GetShortVersion()).
		Msg("Starting site server")

	if err := app.Listen(addr, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	}); err != nil {
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}

	log.Info().Msg("Site server stopped")
	return nil
}
