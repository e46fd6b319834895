package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/controllers"
	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	confirmationController *controllers.ConfirmationController,
	studentController *controllers.StudentController,
	classController *controllers.ClassController,
	consultationController *controllers.ConsultationController,
	medicationController *controllers.MedicationController,
	feedbackController *controllers.FeedbackController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Admin account management
		adminOnly := authenticated.Group("")
		adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminOnly.POST("/auth/register", authController.Register)
			adminOnly.GET("/users", userController.ListUsers)
		}

		staffOrAdmin := authMiddleware.RoleRequired(models.RoleStaff, models.RoleAdmin)

		// Health examination events and results
		examinations := authenticated.Group("/health-examinations")
		{
			examinations.GET("/events", eventController.ListEvents)
			examinations.GET("/events/:eventId", eventController.GetEvent)
			examinations.GET("/events/:eventId/classes/:classId", eventController.GetClassDetail)

			examinationsStaff := examinations.Group("")
			examinationsStaff.Use(staffOrAdmin)
			{
				examinationsStaff.POST("/events", eventController.CreateEvent)
				examinationsStaff.DELETE("/events/:eventId", eventController.DeleteEvent)
				examinationsStaff.GET("/events/:eventId/export", eventController.ExportEventRoster)
				examinationsStaff.PATCH("/:confirmationId/result", confirmationController.RecordExaminationResult)
				examinationsStaff.POST("/schedule-consultation", consultationController.ScheduleConsultation)
			}
		}

		// Vaccination result recording
		vaccinations := authenticated.Group("/vaccination-schedules")
		vaccinations.Use(staffOrAdmin)
		{
			vaccinations.PUT("/:confirmationId/result", confirmationController.RecordVaccinationResult)
		}

		// Parent responses
		notifications := authenticated.Group("/notifications")
		{
			notifications.PUT("/:confirmationId/respond", confirmationController.Respond)
		}

		// Student roster
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/:id", studentController.GetStudent)
			students.GET("/:id/consultations", consultationController.ListStudentConsultations)
			students.GET("/:id/medications", medicationController.ListStudentMedications)

			studentsStaff := students.Group("")
			studentsStaff.Use(staffOrAdmin)
			{
				studentsStaff.POST("", studentController.CreateStudent)
				studentsStaff.PUT("/:id", studentController.UpdateStudent)
				studentsStaff.PUT("/:id/health-record", studentController.UpdateHealthRecord)
				studentsStaff.DELETE("/:id", studentController.DeleteStudent)
			}
		}

		// Class management
		classes := authenticated.Group("/classes")
		{
			classes.GET("", classController.ListClasses)
			classes.GET("/:id", classController.GetClass)

			classesStaff := classes.Group("")
			classesStaff.Use(staffOrAdmin)
			{
				classesStaff.POST("", classController.CreateClass)
				classesStaff.PUT("/:id", classController.UpdateClass)
				classesStaff.DELETE("/:id", classController.DeleteClass)
			}
		}

		// Medications
		medications := authenticated.Group("/medications")
		medications.Use(staffOrAdmin)
		{
			medications.POST("", medicationController.CreateMedication)
			medications.PUT("/:id", medicationController.UpdateMedication)
			medications.DELETE("/:id", medicationController.DeleteMedication)
		}

		// Feedback
		feedback := authenticated.Group("/feedback")
		{
			feedback.POST("", feedbackController.CreateFeedback)

			feedbackStaff := feedback.Group("")
			feedbackStaff.Use(staffOrAdmin)
			{
				feedbackStaff.GET("", feedbackController.ListFeedback)
				feedbackStaff.DELETE("/:id", feedbackController.DeleteFeedback)
			}
		}
	}
}
