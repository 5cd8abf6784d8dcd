package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/cinelog/media-catalog/internal/handler/http"
	"github.com/cinelog/media-catalog/internal/infrastructure/config"
	"github.com/cinelog/media-catalog/internal/infrastructure/database"
	"github.com/cinelog/media-catalog/internal/infrastructure/logger"
	"github.com/cinelog/media-catalog/internal/infrastructure/repository/mongodb"
	"github.com/cinelog/media-catalog/internal/infrastructure/uuidgen"
	"github.com/cinelog/media-catalog/internal/infrastructure/validator"
	"github.com/cinelog/media-catalog/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI, appConfig.ConnectTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)

	// The unique indexes back the catalog's uniqueness guarantees; refuse to
	// start without them.
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.ConnectTimeout)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	mediaRepo := mongodb.NewMediaRepository(db)
	genreRepo := mongodb.NewGenreRepository(db)
	directorRepo := mongodb.NewDirectorRepository(db)
	producerRepo := mongodb.NewProducerRepository(db)
	typeRepo := mongodb.NewMediaTypeRepository(db)

	// Dependency Injection: Services
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	mediaUsecase := usecase.NewMediaUsecase(mediaRepo, genreRepo, directorRepo, producerRepo, typeRepo, uuidGenerator, appValidator, appLogger)
	genreUsecase := usecase.NewGenreUsecase(genreRepo, uuidGenerator)
	directorUsecase := usecase.NewDirectorUsecase(directorRepo, uuidGenerator)
	producerUsecase := usecase.NewProducerUsecase(producerRepo, uuidGenerator)
	typeUsecase := usecase.NewMediaTypeUsecase(typeRepo, uuidGenerator)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(mediaUsecase, genreUsecase, directorUsecase, producerUsecase, typeUsecase, appConfig.RateLimit)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
