package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/examgate/internal/controller"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/middleware"
	"github.com/studenthub/examgate/internal/service"
)

type StudentController struct {
	dashboardService service.DashboardService
	sessionService   service.SessionService
	quickExamService service.QuickExamService
	errors           controller.ErrorWriter
}

func NewStudentController(
	dashboardService service.DashboardService,
	sessionService service.SessionService,
	quickExamService service.QuickExamService,
	errors controller.ErrorWriter,
) *StudentController {
	return &StudentController{
		dashboardService: dashboardService,
		sessionService:   sessionService,
		quickExamService: quickExamService,
		errors:           errors,
	}
}

// ListAssignments godoc
// @Summary (Student) List assigned exams
// @Description Same projection as the teacher dashboard: derived status, formatted deadline, overdue flag, optional title filter.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param search query string false "Title substring filter"
// @Success 200 {array} dto.AssignmentDTO
// @Failure 401 {object} dto.ErrorResponse "Session expired"
// @Failure 502 {object} dto.ErrorResponse "Remote API failure"
// @Router /student/assignments [get]
func (c *StudentController) ListAssignments(ctx *gin.Context) {
	ac := middleware.AuthContext(ctx)
	assignments, err := c.dashboardService.ListAssignments(ctx.Request.Context(), ac, ctx.Query("search"))
	if err != nil {
		c.errors.Write(ctx, err, "Failed to load assignments")
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// StartSession godoc
// @Summary (Student) Start an exam session
// @Description Fetches the exam's questions and opens an in-memory session in the Taking step. If the fetch fails and the placeholder fallback is enabled, a built-in question set is substituted and the session is marked.
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam_id path string true "Exam ID"
// @Param session body dto.StartSessionRequest true "Assignment handoff"
// @Success 201 {object} dto.SessionStateDTO
// @Failure 401 {object} dto.ErrorResponse "Session expired"
// @Failure 502 {object} dto.ErrorResponse "Questions unavailable and fallback disabled"
// @Router /student/assignments/{exam_id}/sessions [post]
func (c *StudentController) StartSession(ctx *gin.Context) {
	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	ac := middleware.AuthContext(ctx)
	state, err := c.sessionService.Start(ctx.Request.Context(), ac, ctx.Param("exam_id"), req)
	if err != nil {
		c.errors.Write(ctx, err, "Failed to start the exam session")
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// GetSession godoc
// @Summary (Student) Get the taking view state
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /student/sessions/{session_id} [get]
func (c *StudentController) GetSession(ctx *gin.Context) {
	state, err := c.sessionService.State(ctx.Param("session_id"))
	if err != nil {
		c.errors.Write(ctx, err, "Failed to load the exam session")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SelectAnswer godoc
// @Summary (Student) Select a choice for a question
// @Description Radio semantics: a new selection replaces any prior one for that question. Only valid while Taking.
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param answer body dto.SelectAnswerRequest true "Selected choice"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown question or wrong step"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /student/sessions/{session_id}/answer [put]
func (c *StudentController) SelectAnswer(ctx *gin.Context) {
	var req dto.SelectAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.sessionService.SelectAnswer(ctx.Param("session_id"), req)
	if err != nil {
		c.errors.Write(ctx, err, "Failed to record the answer")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Navigate godoc
// @Summary (Student) Move between questions
// @Description next/prev clamp at the boundaries (no wraparound); jump goes straight to a zero-based index, as the sidebar does.
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param navigation body dto.NavigateRequest true "Navigation action"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Bad action or index"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /student/sessions/{session_id}/navigate [post]
func (c *StudentController) Navigate(ctx *gin.Context) {
	var req dto.NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.sessionService.Navigate(ctx.Param("session_id"), req)
	if err != nil {
		c.errors.Write(ctx, err, "Failed to navigate")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// EnterReview godoc
// @Summary (Student) Enter the review view
// @Description Transitions Taking → Review. Partial completion is allowed; the recap lists every question as answered or unanswered.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.ReviewDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /student/sessions/{session_id}/review [post]
func (c *StudentController) EnterReview(ctx *gin.Context) {
	review, err := c.sessionService.EnterReview(ctx.Param("session_id"))
	if err != nil {
		c.errors.Write(ctx, err, "Failed to open the review")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// ResumeTaking godoc
// @Summary (Student) Return from review to taking
// @Description With question_index set (a review row's edit affordance) the cursor lands on that question; otherwise the last active index is kept.
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param resume body dto.ResumeRequest true "Optional question index"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /student/sessions/{session_id}/resume [post]
func (c *StudentController) ResumeTaking(ctx *gin.Context) {
	var req dto.ResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.sessionService.ResumeTaking(ctx.Param("session_id"), req)
	if err != nil {
		c.errors.Write(ctx, err, "Failed to return to the exam")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Submit godoc
// @Summary (Student) Submit the exam
// @Description Posts one entry per answered question to the remote API. Success ends the session and cues a dashboard refresh; failure keeps the session in Review with every answer intact.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Not in review"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 502 {object} dto.ErrorResponse "Remote submission failure"
// @Router /student/sessions/{session_id}/submit [post]
func (c *StudentController) Submit(ctx *gin.Context) {
	ac := middleware.AuthContext(ctx)
	result, err := c.sessionService.Submit(ctx.Request.Context(), ac, ctx.Param("session_id"))
	if err != nil {
		c.errors.Write(ctx, err, "Failed to submit the exam. Please try again.")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ExitSession godoc
// @Summary (Student) Exit the exam session
// @Description Destroys the session and its answer map without submitting.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 204 "Session ended"
// @Router /student/sessions/{session_id} [delete]
func (c *StudentController) ExitSession(ctx *gin.Context) {
	c.sessionService.Exit(ctx.Param("session_id"))
	ctx.Status(http.StatusNoContent)
}

// QuickExam godoc
// @Summary (Student) Load the standalone exam page
// @Description All questions at once plus the persisted draft selections restored from the local store.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuickExamDTO
// @Failure 502 {object} dto.ErrorResponse "Questions unavailable"
// @Router /student/quick-exam [get]
func (c *StudentController) QuickExam(ctx *gin.Context) {
	ac := middleware.AuthContext(ctx)
	page, err := c.quickExamService.Load(ctx.Request.Context(), ac)
	if err != nil {
		c.errors.Write(ctx, err, "Failed to load the exam page")
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// SaveQuickDraft godoc
// @Summary (Student) Persist a draft selection
// @Description Drafts survive reloads of the standalone exam page; each change overwrites the stored choice for that question.
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body dto.QuickDraftRequest true "Draft selection"
// @Success 204 "Draft saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /student/quick-exam/answers [put]
func (c *StudentController) SaveQuickDraft(ctx *gin.Context) {
	var req dto.QuickDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	ac := middleware.AuthContext(ctx)
	if err := c.quickExamService.SaveDraft(ac, req); err != nil {
		c.errors.Write(ctx, err, "Failed to save the draft answer")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// QuickReview godoc
// @Summary (Student) Review the standalone exam page
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuickReviewDTO
// @Failure 502 {object} dto.ErrorResponse "Questions unavailable"
// @Router /student/quick-exam/review [get]
func (c *StudentController) QuickReview(ctx *gin.Context) {
	ac := middleware.AuthContext(ctx)
	review, err := c.quickExamService.Review(ctx.Request.Context(), ac)
	if err != nil {
		c.errors.Write(ctx, err, "Failed to build the review")
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// ClearQuickDrafts godoc
// @Summary (Student) Clear persisted drafts
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 204 "Drafts cleared"
// @Router /student/quick-exam [delete]
func (c *StudentController) ClearQuickDrafts(ctx *gin.Context) {
	ac := middleware.AuthContext(ctx)
	if err := c.quickExamService.Clear(ac); err != nil {
		c.errors.Write(ctx, err, "Failed to clear drafts")
		return
	}
	ctx.Status(http.StatusNoContent)
}
