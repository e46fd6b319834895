package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// MedicationController handles tracked medication endpoints
type MedicationController struct {
	medicationService *services.MedicationService
}

// NewMedicationController creates a new MedicationController
func NewMedicationController(medicationService *services.MedicationService) *MedicationController {
	return &MedicationController{
		medicationService: medicationService,
	}
}

// CreateMedication tracks a medication for a student
// @Summary Track a medication
// @Tags medications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMedicationRequest true "Medication details"
// @Success 201 {object} dto.APIResponse{data=models.Medication} "Medication tracked"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /medications [post]
func (c *MedicationController) CreateMedication(ctx *gin.Context) {
	var req dto.CreateMedicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	medication, err := c.medicationService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      medication,
		Timestamp: time.Now(),
	})
}

// ListStudentMedications lists medications tracked for one student
// @Summary List a student's medications
// @Tags medications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Medications retrieved"
// @Router /students/{id}/medications [get]
func (c *MedicationController) ListStudentMedications(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	medications, err := c.medicationService.GetByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      medications,
		Timestamp: time.Now(),
	})
}

// UpdateMedication updates a tracked medication
// @Summary Update a medication
// @Tags medications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medication ID"
// @Param request body dto.UpdateMedicationRequest true "Medication details"
// @Success 200 {object} dto.APIResponse{data=models.Medication} "Medication updated"
// @Failure 404 {object} dto.ErrorResponse "Medication not found"
// @Router /medications/{id} [put]
func (c *MedicationController) UpdateMedication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMedicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	medication, err := c.medicationService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      medication,
		Timestamp: time.Now(),
	})
}

// DeleteMedication stops tracking a medication
// @Summary Delete a medication
// @Tags medications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medication ID"
// @Success 200 {object} dto.APIResponse "Medication deleted"
// @Failure 404 {object} dto.ErrorResponse "Medication not found"
// @Router /medications/{id} [delete]
func (c *MedicationController) DeleteMedication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.medicationService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Medication deleted"},
		Timestamp: time.Now(),
	})
}
