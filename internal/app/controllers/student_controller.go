package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appauth "github.com/khanhle/schoolhealth/internal/app/auth"
	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// StudentController handles student roster endpoints
type StudentController struct {
	studentService *services.StudentService
	authzService   *appauth.AuthorizationService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, authzService *appauth.AuthorizationService) *StudentController {
	return &StudentController{
		studentService: studentService,
		authzService:   authzService,
	}
}

// CreateStudent enrolls a student
// @Summary Create a student
// @Description Enrolls a student in a class, optionally linked to a parent account
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student code already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// ListStudents lists the roster
// @Summary List students
// @Description Returns a paginated roster. Parents see only their own children; staff can filter by class and search by name or code.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param classId query int false "Filter by class ID"
// @Param search query string false "Free-text search over name and code"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse} "Students retrieved"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	role, _ := middleware.CurrentRole(ctx)
	if role == models.RoleParent {
		userID, _ := middleware.CurrentUserID(ctx)
		students, err := c.studentService.ListByParent(ctx, userID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"students": students},
			Timestamp: time.Now(),
		})
		return
	}

	classID, _ := strconv.ParseInt(ctx.Query("classId"), 10, 64)
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "20"))

	resp, err := c.studentService.List(ctx, classID, ctx.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetStudent retrieves one student
// @Summary Get a student
// @Description Returns a student with their health record. Parents may only read their own children.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 403 {object} dto.ErrorResponse "Not the linked parent"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)
	if err := c.authzService.CanViewStudent(ctx, userID, role, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateStudent updates core student fields
// @Summary Update a student
// @Description Replaces the student's core fields
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// UpdateHealthRecord updates the student's health profile
// @Summary Update a student's health record
// @Description Replaces the persistent health profile fields
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateHealthRecordRequest true "Health record"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Health record updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/health-record [put]
func (c *StudentController) UpdateHealthRecord(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateHealthRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.UpdateHealthRecord(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Removes the student and their confirmation records
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student deleted"},
		Timestamp: time.Now(),
	})
}
