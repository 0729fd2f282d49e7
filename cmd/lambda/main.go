package main

import (
	"context"
	"os"

	"github.com/idahoesports/site/internal/config"
	"github.com/idahoesports/site/internal/controllers"
	"github.com/idahoesports/site/internal/initialization"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	deps, err := initialization.NewSiteContainer(cfg).BuildSiteDependencies(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build site dependencies")
	}

	handler := controllers.NewLambdaContactHandler(controllers.ContactControllerDependencies{
		Handler: deps.Dispatcher,
	})

	lambda.Start(handler.Handle)
}
