package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/student-tracker/tracker-service/internal/services"
	"github.com/student-tracker/tracker-service/internal/utils"
)

type AssignmentHandler struct {
	BaseHandler
	assignmentService services.AssignmentService
}

func NewAssignmentHandler(assignmentService services.AssignmentService, logger utils.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		assignmentService: assignmentService,
	}
}

// List returns all assignments owned by the caller.
func (h *AssignmentHandler) List(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	assignments, err := h.assignmentService.List(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: assignments})
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	var req services.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Assignment created successfully",
		Data:    assignment,
	})
}

func (h *AssignmentHandler) Update(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	assignment, err := h.assignmentService.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Assignment updated successfully",
		Data:    assignment,
	})
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.assignmentService.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Assignment deleted successfully"})
}
