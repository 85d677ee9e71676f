package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/student-tracker/tracker-service/internal/config"
	"github.com/student-tracker/tracker-service/internal/repositories"
	"github.com/student-tracker/tracker-service/internal/services"
	"github.com/student-tracker/tracker-service/internal/utils"
)

// HandlerManager owns every HTTP handler and the route table.
type HandlerManager struct {
	userHandler       *UserHandler
	courseHandler     *CourseHandler
	assignmentHandler *AssignmentHandler
	activityHandler   *ActivityHandler
	reportHandler     *ReportHandler
	authMiddleware    *CasdoorAuthMiddleware
	repo              repositories.Repository
	logger            utils.Logger
}

func NewHandlerManager(
	cfg *config.Config,
	serviceManager services.ServiceManager,
	repo repositories.Repository,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		userHandler:       NewUserHandler(serviceManager.User(), logger),
		courseHandler:     NewCourseHandler(serviceManager.Course(), logger),
		assignmentHandler: NewAssignmentHandler(serviceManager.Assignment(), logger),
		activityHandler:   NewActivityHandler(serviceManager.Activity(), logger),
		reportHandler: NewReportHandler(
			serviceManager.Course(),
			serviceManager.Assignment(),
			serviceManager.Activity(),
			logger,
		),
		authMiddleware: NewCasdoorAuthMiddleware(cfg.Casdoor, repo.User()),
		repo:           repo,
		logger:         logger,
	}
}

// SetupRoutes wires the full route table onto the router. Everything under
// /api/v1 except registration requires a resolved identity.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", hm.userHandler.Register)

	authed := v1.Group("")
	authed.Use(hm.authMiddleware.AuthMiddleware())
	{
		authed.GET("/users/me", hm.userHandler.Me)
		authed.PUT("/users/me", hm.userHandler.UpdateMe)

		courses := authed.Group("/courses")
		{
			courses.GET("", hm.courseHandler.List)
			courses.POST("", hm.courseHandler.Create)
			courses.PUT("/:id", hm.courseHandler.Update)
			courses.DELETE("/:id", hm.courseHandler.Delete)
		}

		assignments := authed.Group("/assignments")
		{
			assignments.GET("", hm.assignmentHandler.List)
			assignments.POST("", hm.assignmentHandler.Create)
			assignments.PUT("/:id", hm.assignmentHandler.Update)
			assignments.DELETE("/:id", hm.assignmentHandler.Delete)
		}

		activities := authed.Group("/activities")
		{
			activities.GET("", hm.activityHandler.List)
			activities.POST("", hm.activityHandler.Create)
			activities.PUT("/:id", hm.activityHandler.Update)
			activities.DELETE("/:id", hm.activityHandler.Delete)
		}

		authed.GET("/reports/progress", hm.reportHandler.ExportProgress)
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if err := hm.repo.Ping(c.Request.Context()); err != nil {
		hm.logger.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
