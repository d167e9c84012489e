package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/gradadmin-backend/internal/http/handlers"
	httpMW "github.com/yungbote/gradadmin-backend/internal/http/middleware"
)

type RouterConfig struct {
	AuthMiddleware      *httpMW.AuthMiddleware
	VerificationHandler *httpH.VerificationHandler
	BatchHandler        *httpH.BatchHandler
	HealthHandler       *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.RequireAuth())
	}

	if cfg.VerificationHandler != nil {
		api.POST("/verifications/:id/status", cfg.VerificationHandler.UpdateStatus)
		api.POST("/verifications/bulk-status", cfg.VerificationHandler.BulkUpdateStatus)
		api.GET("/verifications/:id", cfg.VerificationHandler.GetVerification)

		api.POST("/defense-requests/:id/payment-status", cfg.VerificationHandler.UpdateStatusByDefenseRequest)
		api.GET("/defense-requests/:id/history", cfg.VerificationHandler.GetHistory)
		api.GET("/defense-requests/:id/honoraria", cfg.VerificationHandler.GetHonoraria)
	}

	if cfg.BatchHandler != nil {
		api.POST("/payment-batches", cfg.BatchHandler.CreateBatch)
		api.POST("/payment-batches/:id/assign", cfg.BatchHandler.AssignToBatch)
		api.GET("/payment-batches/:id", cfg.BatchHandler.GetBatch)
		api.GET("/payment-batches/:id/export", cfg.BatchHandler.ExportBatch)
	}

	return r
}
