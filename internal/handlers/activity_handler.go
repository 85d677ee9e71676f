package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/student-tracker/tracker-service/internal/services"
	"github.com/student-tracker/tracker-service/internal/utils"
)

type ActivityHandler struct {
	BaseHandler
	activityService services.ActivityService
}

func NewActivityHandler(activityService services.ActivityService, logger utils.Logger) *ActivityHandler {
	return &ActivityHandler{
		BaseHandler:     NewBaseHandler(logger),
		activityService: activityService,
	}
}

func (h *ActivityHandler) List(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	activities, err := h.activityService.List(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Data: activities})
}

func (h *ActivityHandler) Create(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	var req services.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Activity created successfully",
		Data:    activity,
	})
}

func (h *ActivityHandler) Update(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	activity, err := h.activityService.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Activity updated successfully",
		Data:    activity,
	})
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Activity deleted successfully"})
}
