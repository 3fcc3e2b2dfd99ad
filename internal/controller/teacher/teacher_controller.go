package teacher

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/internal/controller"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/middleware"
	"github.com/studenthub/examgate/internal/service"
)

type TeacherController struct {
	dashboardService service.DashboardService
	creationService  service.CreationService
	errors           controller.ErrorWriter
}

func NewTeacherController(
	dashboardService service.DashboardService,
	creationService service.CreationService,
	errors controller.ErrorWriter,
) *TeacherController {
	return &TeacherController{
		dashboardService: dashboardService,
		creationService:  creationService,
		errors:           errors,
	}
}

// ListAssignments godoc
// @Summary (Teacher) List assigned exams
// @Description Fetches the exam list and projects it into display-ready assignments with a derived status. Optional case-insensitive title filter.
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param search query string false "Title substring filter"
// @Success 200 {array} dto.AssignmentDTO
// @Failure 401 {object} dto.ErrorResponse "Session expired"
// @Failure 502 {object} dto.ErrorResponse "Remote API failure"
// @Router /teacher/assignments [get]
func (c *TeacherController) ListAssignments(ctx *gin.Context) {
	ac := middleware.AuthContext(ctx)
	assignments, err := c.dashboardService.ListAssignments(ctx.Request.Context(), ac, ctx.Query("search"))
	if err != nil {
		c.errors.Write(ctx, err, "Failed to load assignments")
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// Catalog godoc
// @Summary (Teacher) Load the exam creation catalog
// @Description Question bank and class list for the creation form. The two fetches run concurrently; a failed class fetch falls back to a built-in list.
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CatalogDTO
// @Failure 401 {object} dto.ErrorResponse "Session expired"
// @Failure 502 {object} dto.ErrorResponse "Question bank unavailable"
// @Router /teacher/catalog [get]
func (c *TeacherController) Catalog(ctx *gin.Context) {
	ac := middleware.AuthContext(ctx)
	catalog, err := c.creationService.Catalog(ctx.Request.Context(), ac)
	if err != nil {
		c.errors.Write(ctx, err, "Failed to load the creation catalog")
		return
	}
	ctx.JSON(http.StatusOK, catalog)
}

// CreateExam godoc
// @Summary (Teacher) Create an exam
// @Description Validates the creation form (name, start, end, class, at least one question) and posts it to the remote API. Violations come back as one consolidated message.
// @Tags Teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam body dto.CreateExamRequest true "Exam creation form"
// @Success 201 "Exam created"
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 401 {object} dto.ErrorResponse "Session expired"
// @Failure 502 {object} dto.ErrorResponse "Remote creation failure"
// @Router /teacher/exams [post]
func (c *TeacherController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	ac := middleware.AuthContext(ctx)
	if err := c.creationService.Create(ctx.Request.Context(), ac, req); err != nil {
		c.errors.Write(ctx, err, "Failed to create exam. Please ensure the server is running.")
		return
	}
	ctx.Status(http.StatusCreated)
}

// DeleteExam godoc
// @Summary (Teacher) Delete an exam
// @Description Destructive and confirmation-gated: without confirm=true no request reaches the remote API. On success the dashboard refetches; there is no optimistic removal.
// @Tags Teacher
// @Produce json
// @Security BearerAuth
// @Param exam_id path string true "Exam ID"
// @Param confirm query bool true "Must be true to proceed"
// @Success 204 "Exam deleted"
// @Failure 400 {object} dto.ErrorResponse "Missing confirmation"
// @Failure 401 {object} dto.ErrorResponse "Session expired"
// @Failure 502 {object} dto.ErrorResponse "Remote deletion failure"
// @Router /teacher/exams/{exam_id} [delete]
func (c *TeacherController) DeleteExam(ctx *gin.Context) {
	examID := ctx.Param("exam_id")
	confirmed := ctx.Query("confirm") == "true"

	ac := middleware.AuthContext(ctx)
	if err := c.dashboardService.DeleteExam(ctx.Request.Context(), ac, examID, confirmed); err != nil {
		c.errors.Write(ctx, err, "Failed to delete exam")
		return
	}
	log.Info().Str("examID", examID).Str("teacher", ac.Name).Msg("Teacher deleted exam")
	ctx.Status(http.StatusNoContent)
}
