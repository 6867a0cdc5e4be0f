package routes

import (
	"diapredict/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterModelRoutes(router *gin.Engine, modelController *controllers.ModelController) {
	router.GET("/", modelController.Root)
	router.GET("/health", modelController.Health)
	router.GET("/model-info", modelController.ModelInfo)
	router.GET("/feature-importance", modelController.FeatureImportance)
}
