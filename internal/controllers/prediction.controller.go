package controllers

import (
	"errors"
	"log"
	"net/http"

	"diapredict/internal/ml"
	"diapredict/internal/models"
	"diapredict/internal/services"

	"github.com/gin-gonic/gin"
)

// PredictionController exposes the inference pipeline over HTTP. When
// the model artifact failed to load at startup both service and
// artifact are nil and every handler reports the model as unavailable
// instead of computing.
type PredictionController struct {
	service  services.PredictionService
	artifact *ml.Artifact
}

func NewPredictionController(service services.PredictionService, artifact *ml.Artifact) *PredictionController {
	return &PredictionController{
		service:  service,
		artifact: artifact,
	}
}

// Predict godoc
// @Summary Make a diabetes risk prediction
// @Description Run the full pipeline: validation, scaling, classification, risk factors and evidence-based recommendations
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body models.PredictionRequest true "Feature mapping for one patient"
// @Success 200 {object} models.PredictionResponse "Prediction result"
// @Failure 400 {object} map[string]interface{} "Missing required features"
// @Failure 500 {object} map[string]interface{} "Prediction failed"
// @Router /predict [post]
func (pc *PredictionController) Predict(c *gin.Context) {
	if pc.service == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Model not loaded",
		})
		return
	}

	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return
	}

	if req.Features == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           "Missing features in request",
			"expected_format": gin.H{"features": zeroFeatures(pc.artifact.Features)},
		})
		return
	}

	response, err := pc.service.Predict(req.Features)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":    "Missing required features",
				"missing":  validationErr.Missing,
				"required": validationErr.Required,
			})
			return
		}

		log.Printf("Prediction failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Prediction failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// BatchPredict godoc
// @Summary Batch prediction for multiple patients
// @Description Attempt every patient independently; one malformed record never aborts the rest of the batch
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body models.BatchPredictionRequest true "List of patient feature mappings"
// @Success 200 {object} models.BatchPredictionResponse "Per-patient predictions or errors"
// @Failure 400 {object} map[string]interface{} "Missing patients data"
// @Failure 500 {object} map[string]interface{} "Model not loaded"
// @Router /batch-predict [post]
func (pc *PredictionController) BatchPredict(c *gin.Context) {
	if pc.service == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Model not loaded",
		})
		return
	}

	var req models.BatchPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
		return
	}

	if req.Patients == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing patients data",
		})
		return
	}

	c.JSON(http.StatusOK, pc.service.BatchPredict(req.Patients))
}

func zeroFeatures(names []string) map[string]float64 {
	zeroed := make(map[string]float64, len(names))
	for _, name := range names {
		zeroed[name] = 0
	}
	return zeroed
}
