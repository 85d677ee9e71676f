package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/student-tracker/tracker-service/internal/services"
	"github.com/student-tracker/tracker-service/internal/utils"
)

// ReportHandler exports the caller's tracked records as an xlsx workbook,
// one sheet per record type.
type ReportHandler struct {
	BaseHandler
	courseService     services.CourseService
	assignmentService services.AssignmentService
	activityService   services.ActivityService
}

func NewReportHandler(
	courseService services.CourseService,
	assignmentService services.AssignmentService,
	activityService services.ActivityService,
	logger utils.Logger,
) *ReportHandler {
	return &ReportHandler{
		BaseHandler:       NewBaseHandler(logger),
		courseService:     courseService,
		assignmentService: assignmentService,
		activityService:   activityService,
	}
}

func (h *ReportHandler) ExportProgress(c *gin.Context) {
	userID := h.currentUserID(c)
	if userID == "" {
		return
	}

	ctx := c.Request.Context()

	courses, err := h.courseService.List(ctx, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	assignments, err := h.assignmentService.List(ctx, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	activities, err := h.activityService.List(ctx, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	courseSheet := "Courses"
	f.SetSheetName("Sheet1", courseSheet)
	setRow(f, courseSheet, 1, "ID", "Title", "Instructor", "Progress (%)")
	for i, course := range courses {
		setRow(f, courseSheet, i+2, course.ID, course.Title, course.Instructor, course.Progress)
	}

	assignmentSheet := "Assignments"
	if _, err := f.NewSheet(assignmentSheet); err != nil {
		h.handleServiceError(c, err)
		return
	}
	setRow(f, assignmentSheet, 1, "ID", "Title", "Instructor", "Due Date", "Total Marks", "Obtained Marks", "Status")
	for i, a := range assignments {
		obtained := ""
		if a.ObtainedMarks != nil {
			obtained = fmt.Sprintf("%.2f", *a.ObtainedMarks)
		}
		setRow(f, assignmentSheet, i+2,
			a.ID, a.Title, a.Instructor,
			a.DueDate.Format("2006-01-02 15:04"),
			a.TotalMarks, obtained, string(a.Status))
	}

	activitySheet := "Activities"
	if _, err := f.NewSheet(activitySheet); err != nil {
		h.handleServiceError(c, err)
		return
	}
	setRow(f, activitySheet, 1, "ID", "Title", "Type", "Course", "Due Date", "Status")
	for i, a := range activities {
		due := ""
		if a.DueDate != nil {
			due = a.DueDate.Format("2006-01-02 15:04")
		}
		setRow(f, activitySheet, i+2, a.ID, a.Title, a.Type, a.Course, due, string(a.Status))
	}

	filename := fmt.Sprintf("progress-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("failed to stream progress report", "error", err, "user_id", userID)
	}
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}
