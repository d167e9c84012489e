package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/gradadmin-backend/internal/http/response"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
	"github.com/yungbote/gradadmin-backend/internal/services"
)

type BatchHandler struct {
	log     *logger.Logger
	batches services.BatchService
}

func NewBatchHandler(log *logger.Logger, batches services.BatchService) *BatchHandler {
	return &BatchHandler{
		log:     log.With("handler", "BatchHandler"),
		batches: batches,
	}
}

type createBatchRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /payment-batches
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req createBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	batch, err := h.batches.CreateBatch(c.Request.Context(), req.Name)
	if err != nil {
		h.log.Error("CreateBatch failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"batch": batch})
}

type assignBatchRequest struct {
	VerificationIDs []uuid.UUID `json:"verification_ids" binding:"required"`
}

// POST /payment-batches/:id/assign
func (h *BatchHandler) AssignToBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req assignBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	count, err := h.batches.AddToBatch(c.Request.Context(), batchID, req.VerificationIDs)
	if err != nil {
		h.log.Error("AssignToBatch failed", "error", err, "batch_id", batchID)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "assigned_count": count})
}

// GET /payment-batches/:id
func (h *BatchHandler) GetBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	batch, members, err := h.batches.GetBatch(c.Request.Context(), batchID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"batch": batch, "verifications": members})
}

// GET /payment-batches/:id/export
func (h *BatchHandler) ExportBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rows, err := h.batches.ExportBatch(c.Request.Context(), batchID)
	if err != nil {
		h.log.Error("ExportBatch failed", "error", err, "batch_id", batchID)
		response.RespondServiceError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := services.WriteExportCSV(&buf, rows); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "export_failed", err)
		return
	}
	filename := fmt.Sprintf("payment-batch-%s.csv", batchID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
