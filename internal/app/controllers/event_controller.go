package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/services"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// EventController handles health event endpoints
type EventController struct {
	eventService  services.EventService
	reportService *services.ReportService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, reportService *services.ReportService) *EventController {
	return &EventController{
		eventService:  eventService,
		reportService: reportService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateEvent creates a health event and notifies target students
// @Summary Create a health event
// @Description Creates an examination or vaccination event and fans out one pending confirmation per student in the target grades
// @Tags health-examinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or no target classes"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /health-examinations/events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
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

	event, confirmations, err := c.eventService.CreateEvent(ctx, &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: gin.H{
			"event":                event,
			"confirmationsCreated": confirmations,
		},
		Timestamp: time.Now(),
	})
}

// ListEvents lists events with aggregated summaries
// @Summary List health events
// @Description Returns every event with per-class status counts, rates and badges. Supports free-text search and type filtering.
// @Tags health-examinations
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search over title, location and staff"
// @Param eventType query string false "Event type filter, or all"
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved"
// @Router /health-examinations/events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	search := ctx.Query("search")
	eventType := ctx.DefaultQuery("eventType", services.FilterAll)

	resp, err := c.eventService.ListEventSummaries(ctx, search, eventType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetEvent retrieves one event with its aggregations
// @Summary Get a health event
// @Description Returns one event with per-class status counts, rates and badge
// @Tags health-examinations
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventSummary} "Event retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /health-examinations/events/{eventId} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "eventId")
	if !ok {
		return
	}

	summary, err := c.eventService.GetEventSummary(ctx, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summary,
		Timestamp: time.Now(),
	})
}

// GetClassDetail retrieves the confirmation roster of one class in an event
// @Summary Get class detail within an event
// @Description Returns each student's confirmation with fresh status counts for the class
// @Tags health-examinations
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Param classId path int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClassDetailResponse} "Class detail retrieved"
// @Failure 404 {object} dto.ErrorResponse "Event or class not found"
// @Router /health-examinations/events/{eventId}/classes/{classId} [get]
func (c *EventController) GetClassDetail(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "eventId")
	if !ok {
		return
	}
	classID, ok := parseIDParam(ctx, "classId")
	if !ok {
		return
	}

	detail, err := c.eventService.GetClassDetail(ctx, eventID, classID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// DeleteEvent deletes an event and its confirmations
// @Summary Delete a health event
// @Description Deletes the event; its confirmations are removed by cascade
// @Tags health-examinations
// @Produce json
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {object} dto.APIResponse "Event deleted"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /health-examinations/events/{eventId} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "eventId")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Event deleted"},
		Timestamp: time.Now(),
	})
}

// ExportEventRoster downloads the confirmation roster as a spreadsheet
// @Summary Export event roster
// @Description Streams an xlsx workbook with one row per student confirmation
// @Tags health-examinations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param eventId path int true "Event ID"
// @Success 200 {file} file "Workbook"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /health-examinations/events/{eventId}/export [get]
func (c *EventController) ExportEventRoster(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx, "eventId")
	if !ok {
		return
	}

	workbook, filename, err := c.reportService.BuildEventReport(ctx, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(ctx.Writer); err != nil {
		middleware.HandleAPIError(ctx, err)
	}
}
