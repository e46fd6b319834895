package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// ClassController handles class management endpoints
type ClassController struct {
	classService *services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService *services.ClassService) *ClassController {
	return &ClassController{
		classService: classService,
	}
}

// CreateClass creates a class
// @Summary Create a class
// @Description Creates a class at a grade level
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=models.Class} "Class created"
// @Failure 409 {object} dto.ErrorResponse "Class already exists"
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.classService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// ListClasses lists classes, optionally grouped by grade
// @Summary List classes
// @Description Returns every class; pass grouped=true for a by-grade grouping
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param grouped query bool false "Group classes under grade levels"
// @Success 200 {object} dto.APIResponse "Classes retrieved"
// @Router /classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	if ctx.Query("grouped") == "true" {
		groups, err := c.classService.GetGroupedByGrade(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      groups,
			Timestamp: time.Now(),
		})
		return
	}

	classes, err := c.classService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// GetClass retrieves one class
// @Summary Get a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=models.Class} "Class retrieved"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	class, err := c.classService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// UpdateClass updates a class
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body dto.UpdateClassRequest true "Class information"
// @Success 200 {object} dto.APIResponse{data=models.Class} "Class updated"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /classes/{id} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.classService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// DeleteClass deletes an empty class
// @Summary Delete a class
// @Description Deletes a class. Classes with enrolled students cannot be deleted.
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} dto.APIResponse "Class deleted"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 409 {object} dto.ErrorResponse "Class has enrolled students"
// @Router /classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Class deleted"},
		Timestamp: time.Now(),
	})
}
