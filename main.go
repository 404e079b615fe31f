// Package main is the entry point for the tire catalog API.
// It initializes all dependencies and starts either a standalone HTTP
// server or, when running inside AWS Lambda, a function-invocation adapter
// over the same router.
package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"tirecatalog/src/app/server"
	"tirecatalog/src/infra/config"
	"tirecatalog/src/infra/db"
	"tirecatalog/src/infra/logger"
	"tirecatalog/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize the database handle; the pool itself is created lazily on
	// the first query so cold starts stay cheap.
	pg := db.New(cfg.Database, log)

	if cfg.Database.Migrate {
		if err := pg.Migrate(context.Background()); err != nil {
			return err
		}
	}

	// Initialize repositories
	tireRepo := repo.NewPostgresTireRepository(pg, log)

	srv := server.New(cfg, log, tireRepo)

	// Inside Lambda the runtime owns the process lifecycle and the pool is
	// abandoned on teardown; standalone we listen and close it on shutdown.
	if onLambda() {
		log.Info("running as function invocation handler")
		adapter := ginadapter.NewV2(srv.Router())
		lambda.Start(func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return nil
	}

	defer pg.Close()

	// Run blocks until shutdown signal is received
	return srv.Run()
}

// onLambda reports whether the process is hosted by the AWS Lambda runtime.
func onLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}
