package routes

import (
	"diapredict/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPredictionRoutes(router *gin.Engine, predictionController *controllers.PredictionController) {
	router.POST("/predict", predictionController.Predict)
	router.POST("/batch-predict", predictionController.BatchPredict)
}
