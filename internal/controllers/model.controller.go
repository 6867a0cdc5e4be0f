package controllers

import (
	"net/http"
	"sort"
	"time"

	"diapredict/internal/ml"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// ModelController serves the read-only model metadata endpoints. These
// stay available even when the model artifact failed to load, so the
// service can report its degraded state.
type ModelController struct {
	artifact *ml.Artifact
}

func NewModelController(artifact *ml.Artifact) *ModelController {
	return &ModelController{artifact: artifact}
}

// Root godoc
// @Summary API information
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "API info"
// @Router / [get]
func (mc *ModelController) Root(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.JSON(http.StatusOK, gin.H{
		"name":    "Diabetes Prediction API",
		"version": apiVersion,
		"status":  "running",
		"model":   mc.modelName(),
		"endpoints": gin.H{
			"health":             "/health",
			"model_info":         "/model-info",
			"predict":            "/predict (POST)",
			"batch_predict":      "/batch-predict (POST)",
			"feature_importance": "/feature-importance",
		},
	})
}

// Health godoc
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Service health"
// @Router /health [get]
func (mc *ModelController) Health(c *gin.Context) {
	accuracy := 0.0
	if mc.artifact != nil {
		accuracy = mc.artifact.Metrics["accuracy"]
	}

	c.Header("Cache-Control", "no-cache")
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"model":          mc.modelName(),
		"model_accuracy": accuracy,
		"timestamp":      time.Now().Format(time.RFC3339),
	})
}

// ModelInfo godoc
// @Summary Model information and metrics
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Model metadata"
// @Failure 500 {object} map[string]interface{} "Model not loaded"
// @Router /model-info [get]
func (mc *ModelController) ModelInfo(c *gin.Context) {
	if mc.artifact == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Model not loaded",
		})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.JSON(http.StatusOK, gin.H{
		"model_name":           mc.artifact.ModelName,
		"features":             mc.artifact.Features,
		"feature_count":        len(mc.artifact.Features),
		"feature_importance":   mc.artifact.FeatureImportance,
		"metrics":              mc.artifact.Metrics,
		"feature_descriptions": ml.FeatureDescriptions,
	})
}

// FeatureImportance godoc
// @Summary Feature importance rankings
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{} "Importance map with top 10"
// @Failure 404 {object} map[string]interface{} "Feature importance not available"
// @Router /feature-importance [get]
func (mc *ModelController) FeatureImportance(c *gin.Context) {
	if mc.artifact == nil || len(mc.artifact.FeatureImportance) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Feature importance not available",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feature_importance": mc.artifact.FeatureImportance,
		"top_10":             mc.topImportance(10),
	})
}

// topImportance returns the n most important features in descending
// order, ties broken by name for a stable response.
func (mc *ModelController) topImportance(n int) []gin.H {
	type ranked struct {
		feature    string
		importance float64
	}

	all := make([]ranked, 0, len(mc.artifact.FeatureImportance))
	for feature, importance := range mc.artifact.FeatureImportance {
		all = append(all, ranked{feature, importance})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].importance != all[j].importance {
			return all[i].importance > all[j].importance
		}
		return all[i].feature < all[j].feature
	})

	if n > len(all) {
		n = len(all)
	}
	top := make([]gin.H, 0, n)
	for _, r := range all[:n] {
		top = append(top, gin.H{"feature": r.feature, "importance": r.importance})
	}
	return top
}

func (mc *ModelController) modelName() string {
	if mc.artifact == nil {
		return "not loaded"
	}
	return mc.artifact.ModelName
}
