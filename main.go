// main.go
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bikerz-heaven/controllers"
	"bikerz-heaven/routes"
	"bikerz-heaven/store"
	"bikerz-heaven/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := utils.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal("connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logger.Error("disconnect mongodb", zap.Error(err))
		}
	}()

	stores := store.NewStores(client, cfg.DatabaseName)
	emailService := utils.NewEmailService(cfg.SendGridAPIKey, cfg.EmailSender)
	if emailService == nil {
		logger.Info("SENDGRID_API_KEY not set, order confirmation mail disabled")
	}

	// Initialize controllers
	partController := controllers.NewPartController(stores.Parts, logger)
	orderController := controllers.NewOrderController(stores.Orders, stores.Parts, stores.Users, emailService, logger)
	reviewController := controllers.NewReviewController(stores.Reviews, logger)
	userController := controllers.NewUserController(stores.Users, logger)
	profileController := controllers.NewProfileController(stores.Profiles, stores.Users, logger)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, partController, orderController, reviewController, userController, profileController, stores.Users)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	logger.Info("Bikerz Heaven server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, cors(router)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
