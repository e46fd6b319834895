package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// ConfirmationController handles parent responses and clinical result
// recording
type ConfirmationController struct {
	confirmationService services.ConfirmationService
}

// NewConfirmationController creates a new ConfirmationController
func NewConfirmationController(confirmationService services.ConfirmationService) *ConfirmationController {
	return &ConfirmationController{
		confirmationService: confirmationService,
	}
}

// Respond records a parent's decision on a pending confirmation
// @Summary Respond to a notification
// @Description Applies the parent's Agree or Disagree decision. Disagree requires a rejection reason. Responding twice is a conflict.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param confirmationId path int true "Confirmation ID"
// @Param request body dto.RespondRequest true "Decision"
// @Success 200 {object} dto.APIResponse "Response recorded"
// @Failure 400 {object} dto.ErrorResponse "Missing rejection reason"
// @Failure 403 {object} dto.ErrorResponse "Not the linked parent"
// @Failure 404 {object} dto.ErrorResponse "Confirmation not found"
// @Failure 409 {object} dto.ErrorResponse "Already responded"
// @Router /notifications/{confirmationId}/respond [put]
func (c *ConfirmationController) Respond(ctx *gin.Context) {
	confirmationID, ok := parseIDParam(ctx, "confirmationId")
	if !ok {
		return
	}

	var req dto.RespondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, okID := middleware.CurrentUserID(ctx)
	role, okRole := middleware.CurrentRole(ctx)
	if !okID || !okRole {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	confirmation, err := c.confirmationService.Respond(ctx, confirmationID, userID, role, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      confirmation,
		Timestamp: time.Now(),
	})
}

// RecordExaminationResult records an examination result
// @Summary Record an examination result
// @Description Records a periodic, dental or eye result on an approved confirmation. The payload variant must match the event type.
// @Tags health-examinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param confirmationId path int true "Confirmation ID"
// @Param request body dto.RecordResultRequest true "Result payload"
// @Success 200 {object} dto.APIResponse "Result recorded"
// @Failure 400 {object} dto.ErrorResponse "Payload does not match the event type"
// @Failure 404 {object} dto.ErrorResponse "Confirmation not found"
// @Failure 409 {object} dto.ErrorResponse "Confirmation not approved or already completed"
// @Router /health-examinations/{confirmationId}/result [patch]
func (c *ConfirmationController) RecordExaminationResult(ctx *gin.Context) {
	c.recordResult(ctx, false)
}

// RecordVaccinationResult records a vaccination outcome
// @Summary Record a vaccination result
// @Description Records the observed vaccination outcome on an approved confirmation
// @Tags vaccination-schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param confirmationId path int true "Confirmation ID"
// @Param request body dto.RecordResultRequest true "Result payload"
// @Success 200 {object} dto.APIResponse "Result recorded"
// @Failure 400 {object} dto.ErrorResponse "Payload does not match the event type"
// @Failure 404 {object} dto.ErrorResponse "Confirmation not found"
// @Failure 409 {object} dto.ErrorResponse "Confirmation not approved or already completed"
// @Router /vaccination-schedules/{confirmationId}/result [put]
func (c *ConfirmationController) RecordVaccinationResult(ctx *gin.Context) {
	c.recordResult(ctx, true)
}

func (c *ConfirmationController) recordResult(ctx *gin.Context, vaccination bool) {
	confirmationID, ok := parseIDParam(ctx, "confirmationId")
	if !ok {
		return
	}

	var req dto.RecordResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var err error
	var confirmation interface{}
	if vaccination {
		confirmation, err = c.confirmationService.RecordVaccinationResult(ctx, confirmationID, &req)
	} else {
		confirmation, err = c.confirmationService.RecordExaminationResult(ctx, confirmationID, &req)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      confirmation,
		Timestamp: time.Now(),
	})
}
