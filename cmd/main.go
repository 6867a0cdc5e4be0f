package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"diapredict/docs"
	"diapredict/internal/controllers"
	"diapredict/internal/middleware"
	"diapredict/internal/ml"
	"diapredict/internal/services"
	"diapredict/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables; a missing .env file is fine in
	// containerized deployments.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Diabetes Prediction API"
	docs.SwaggerInfo.Description = "REST endpoints for diabetes risk inference and evidence-based health recommendations"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "models/diabetes_model.json"
	}

	// The artifact is loaded once and shared read-only across all
	// requests. When loading fails the server still starts: metadata
	// endpoints respond, inference endpoints report the model as
	// unavailable.
	log.Printf("Loading model artifact from %s...", modelPath)
	artifact, err := ml.LoadArtifact(modelPath)
	if err != nil {
		log.Printf("Error loading model: %v", err)
		log.Println("The application will start, but predictions will fail until a model artifact is available")
	} else {
		log.Printf("Model loaded: %s", artifact.ModelName)
		log.Printf("Accuracy: %.4f", artifact.Metrics["accuracy"])
	}

	var predictionService services.PredictionService
	if artifact != nil {
		predictionService = services.NewPredictor(artifact)
	}

	predictionController := controllers.NewPredictionController(predictionService, artifact)
	modelController := controllers.NewModelController(artifact)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	routes.RegisterModelRoutes(router, modelController)
	routes.RegisterPredictionRoutes(router, predictionController)
	routes.RegisterSwaggerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Health Check: http://localhost:%s/health", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
