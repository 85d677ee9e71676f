package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/student-tracker/tracker-service/internal/services"
)

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Not-found and not-owned are indistinguishable on purpose.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := gin.H{"errors": validationErrors}
		if missing := validationErrors.MissingFields(); len(missing) > 0 {
			details["missing_required_fields"] = missing
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: details,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "User not authenticated",
		})
	case errors.Is(err, services.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Assignment not found",
		})
	case errors.Is(err, services.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Activity not found",
		})
	case errors.Is(err, services.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Course not found",
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "User not found",
		})
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "User already exists",
		})
	default:
		h.logger.Error("Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
