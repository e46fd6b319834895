package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
	"github.com/khanhle/schoolhealth/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the HTTP error envelope. Not-found
// becomes 404, validation 400, state machine conflicts 409, auth 401/403,
// everything else 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrClassNotFound,
		apperrors.ErrEventNotFound,
		apperrors.ErrConfirmationNotFound,
		apperrors.ErrConsultationNotFound,
		apperrors.ErrMedicationNotFound,
		apperrors.ErrFeedbackNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})

	case errors.Is(err, apperrors.ErrRejectionReasonRequired):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeReasonRequired, "A rejection reason is required when disagreeing"),
		})

	case errors.Is(err, apperrors.ErrFollowUpDateRequired):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A follow-up date is required when follow-up is flagged"),
		})

	case apperrors.Is(err, apperrors.ErrResultTypeMismatch, apperrors.ErrResultPayloadInvalid):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResultMismatch, err.Error()),
		})

	case apperrors.Is(err, apperrors.ErrConfirmationAlreadyResponded,
		apperrors.ErrConfirmationNotApproved,
		apperrors.ErrConfirmationAlreadyCompleted):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidTransition, err.Error()),
		})

	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrEventHasNoTargets):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})

	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"),
		})

	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists,
		apperrors.ErrStudentCodeAlreadyExists,
		apperrors.ErrClassAlreadyExists,
		apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})

	case errors.Is(err, apperrors.ErrClassHasStudents):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, err.Error()),
		})

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
