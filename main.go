package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"playwin/database"
	"playwin/jobs"
	"playwin/routes"
	"playwin/services"
	"playwin/utils/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	database.Connect()

	if _, err := services.EnsureDefaultSettings(database.DB); err != nil {
		logger.Log.Fatalf("failed to seed commission settings: %v", err)
	}
	if err := services.EnsureAdmin(database.DB,
		os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PHONE"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		logger.Log.Fatalf("failed to seed admin account: %v", err)
	}

	host := os.Getenv("HOST")
	port := os.Getenv("PORT")

	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "4000"
	}

	app := fiber.New()
	routes.Setup(app)
	jobs.StartGameScheduler()

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Infof("server running at %s", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Log.Panicf("failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		logger.Log.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited cleanly")
}
