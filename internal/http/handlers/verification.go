package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/gradadmin-backend/internal/domain"
	"github.com/yungbote/gradadmin-backend/internal/http/response"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
	"github.com/yungbote/gradadmin-backend/internal/services"
)

type VerificationHandler struct {
	log           *logger.Logger
	verifications services.VerificationService
}

func NewVerificationHandler(log *logger.Logger, verifications services.VerificationService) *VerificationHandler {
	return &VerificationHandler{
		log:           log.With("handler", "VerificationHandler"),
		verifications: verifications,
	}
}

type statusUpdateRequest struct {
	Status         string `json:"status" binding:"required"`
	Remarks        string `json:"remarks"`
	InvalidComment string `json:"invalid_comment"`
}

func (r statusUpdateRequest) toUpdate() services.StatusUpdate {
	return services.StatusUpdate{
		Status:         types.VerificationStatus(r.Status),
		Remarks:        r.Remarks,
		InvalidComment: r.InvalidComment,
	}
}

// POST /verifications/:id/status
func (h *VerificationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.verifications.UpdateStatus(c.Request.Context(), id, req.toUpdate())
	if err != nil {
		h.log.Error("UpdateStatus failed", "error", err, "verification_id", id)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success": true,
		"status":  result.Verification.Status,
		"fanout":  result.Fanout,
	})
}

// POST /defense-requests/:id/payment-status
func (h *VerificationHandler) UpdateStatusByDefenseRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.verifications.UpdateStatusByDefenseRequest(c.Request.Context(), requestID, req.toUpdate())
	if err != nil {
		h.log.Error("UpdateStatusByDefenseRequest failed", "error", err, "defense_request_id", requestID)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":         true,
		"status":          result.Verification.Status,
		"verification_id": result.Verification.ID,
		"fanout":          result.Fanout,
	})
}

type bulkStatusRequest struct {
	VerificationIDs   []uuid.UUID `json:"verification_ids"`
	DefenseRequestIDs []uuid.UUID `json:"defense_request_ids"`
	Status            string      `json:"status" binding:"required"`
	InvalidComment    string      `json:"invalid_comment"`
}

// POST /verifications/bulk-status
func (h *VerificationHandler) BulkUpdateStatus(c *gin.Context) {
	var req bulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if len(req.VerificationIDs) == 0 && len(req.DefenseRequestIDs) == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	result, err := h.verifications.BulkUpdateStatus(c.Request.Context(), req.VerificationIDs, req.DefenseRequestIDs, services.StatusUpdate{
		Status:         types.VerificationStatus(req.Status),
		InvalidComment: req.InvalidComment,
	})
	if err != nil {
		h.log.Error("BulkUpdateStatus failed", "error", err)
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":       true,
		"updated_count": result.UpdatedCount,
		"fanout_runs":   result.FanoutRuns,
	})
}

// GET /verifications/:id
func (h *VerificationHandler) GetVerification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	v, err := h.verifications.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"verification": v})
}

// GET /defense-requests/:id/history
func (h *VerificationHandler) GetHistory(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	entries, err := h.verifications.GetHistory(c.Request.Context(), requestID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"history": entries})
}

// GET /defense-requests/:id/honoraria
func (h *VerificationHandler) GetHonoraria(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	rows, err := h.verifications.GetHonoraria(c.Request.Context(), requestID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"honoraria": rows})
}
