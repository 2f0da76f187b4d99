package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"petadoption/internal/handlers"
	"petadoption/internal/repositories"
	"petadoption/internal/services"
	"petadoption/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DB", "adoption")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	mongoURI := viper.GetString("MONGODB_URI")
	mongoDB := viper.GetString("MONGODB_DB")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize MongoDB Client ---
	// The client is constructed here and passed into the repositories
	// explicitly; nothing else in the process holds store state.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", mongoURI)
	db := mongoClient.Database(mongoDB)

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable, adoption events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Initialize Repositories ---
	userRepo, err := repositories.NewMongoUserRepository(ctx, db)
	if err != nil {
		log.Fatalf("Failed to initialize user repository: %v", err)
	}
	petRepo := repositories.NewMongoPetRepository(db)

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo, petRepo)
	petService := services.NewPetService(petRepo, userRepo)
	adoptionService := services.NewAdoptionService(petRepo, userRepo, mqClient)
	mockingService := services.NewMockingService(userRepo, petRepo)

	// --- Initialize Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	petHandler := handlers.NewPetHandler(petService)
	adoptionHandler := handlers.NewAdoptionHandler(adoptionService)
	mockHandler := handlers.NewMockHandler(mockingService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(cors.New())
	app.Use(logger.New())

	// --- API Routes ---
	api := app.Group("/api")

	userHandler.RegisterRoutes(api)
	petHandler.RegisterRoutes(api)
	adoptionHandler.RegisterRoutes(api)
	mockHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "OK",
			"message": "server is up and running",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer disconnectCancel()
	if err := mongoClient.Disconnect(disconnectCtx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}

	log.Println("Server gracefully stopped")
}
