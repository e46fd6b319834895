package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// ConsultationController handles follow-up consultation endpoints
type ConsultationController struct {
	consultationService *services.ConsultationService
}

// NewConsultationController creates a new ConsultationController
func NewConsultationController(consultationService *services.ConsultationService) *ConsultationController {
	return &ConsultationController{
		consultationService: consultationService,
	}
}

// ScheduleConsultation books a consultation for a student
// @Summary Schedule a consultation
// @Description Books a follow-up consultation for a student
// @Tags health-examinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleConsultationRequest true "Consultation details"
// @Success 201 {object} dto.APIResponse{data=models.Consultation} "Consultation scheduled"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /health-examinations/schedule-consultation [post]
func (c *ConsultationController) ScheduleConsultation(ctx *gin.Context) {
	var req dto.ScheduleConsultationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	consultation, err := c.consultationService.Schedule(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      consultation,
		Timestamp: time.Now(),
	})
}

// ListStudentConsultations lists consultations for one student
// @Summary List a student's consultations
// @Tags health-examinations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Consultations retrieved"
// @Router /students/{id}/consultations [get]
func (c *ConsultationController) ListStudentConsultations(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	consultations, err := c.consultationService.GetByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      consultations,
		Timestamp: time.Now(),
	})
}
