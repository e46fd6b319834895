package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// FeedbackController handles feedback endpoints
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// CreateFeedback submits feedback
// @Summary Submit feedback
// @Description Sends a message to the health office on behalf of the authenticated user
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} dto.APIResponse{data=models.Feedback} "Feedback submitted"
// @Router /feedback [post]
func (c *FeedbackController) CreateFeedback(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	feedback, err := c.feedbackService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}

// ListFeedback lists feedback messages
// @Summary List feedback
// @Description Returns every feedback message, newest first. Staff only.
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Feedback retrieved"
// @Router /feedback [get]
func (c *FeedbackController) ListFeedback(ctx *gin.Context) {
	feedback, err := c.feedbackService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}

// DeleteFeedback removes a feedback message
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} dto.APIResponse "Feedback deleted"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /feedback/{id} [delete]
func (c *FeedbackController) DeleteFeedback(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feedbackService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Feedback deleted"},
		Timestamp: time.Now(),
	})
}
