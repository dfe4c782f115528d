package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mpetrov/portfolio-site-backend/api"
	"github.com/mpetrov/portfolio-site-backend/config"
	"github.com/mpetrov/portfolio-site-backend/database"
	"github.com/mpetrov/portfolio-site-backend/services"
)

// maxOpenConns bounds the shared connection pool. Requests beyond the bound
// queue inside database/sql; there is no explicit backpressure signal.
const maxOpenConns = 10

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	c := config.New()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.GetString(c, "DB_USER", config.DefaultDBUser),
		config.GetString(c, "DB_PASSWORD", config.DefaultDBPassword),
		config.GetString(c, "DB_HOST", config.DefaultDBHost),
		config.GetString(c, "DB_PORT", "3306"),
		config.GetString(c, "DB_NAME", config.DefaultDBName),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting underlying sql.DB")
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	currentDB := database.New(db)

	// Schema and seed row are created here, once, before the server accepts
	// requests. No request path creates tables lazily.
	if err := currentDB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database schema")
	}
	if err := currentDB.SeedDefaultAdmin(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error seeding default admin")
	}

	imageStore := services.NewImageStore(services.DefaultUploadDir)
	if err := imageStore.EnsureDir(); err != nil {
		log.Fatal().Err(err).Msg("error creating upload directory")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, imageStore)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
