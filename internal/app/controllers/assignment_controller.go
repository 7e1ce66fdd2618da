package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/app/services"
	"github.com/IndiraMehta/EduTask/internal/middleware"
)

// AssignmentController handles the assignment and submission workflow
type AssignmentController struct {
	assignmentService *services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// List returns assignments from the caller's perspective
// @Summary List assignments
// @Description Teachers get their own assignments. Students get assignments for their branch and year with a submitted flag and display status.
// @Tags assignments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentResponse}
// @Router /assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	assignments, err := c.assignmentService.ListForUser(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments))
}

// TeacherOverview returns every owned assignment with its submissions
// @Summary List owned assignments with all submissions
// @Tags assignments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentWithSubmissionsResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Router /assignments/teacher/submissions [get]
func (c *AssignmentController) TeacherOverview(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	overview, err := c.assignmentService.TeacherOverview(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(overview))
}

// GetSubmissions returns the submissions on one assignment
// @Summary List submissions for an assignment
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.SubmissionResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller did not create the assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id}/submissions [get]
func (c *AssignmentController) GetSubmissions(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	assignmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	submissions, err := c.assignmentService.GetSubmissions(ctx.Request.Context(), user, assignmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submissions))
}

// Create stores a new assignment with optional PDF attachments
// @Summary Create an assignment
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param deadline formData string true "Deadline (RFC3339)"
// @Param branch formData string true "Target branch"
// @Param year formData string true "Target year"
// @Param attachments formData file false "PDF attachments (max 5, 10MB each)"
// @Success 201 {object} dto.APIResponse{data=dto.AssignmentResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Router /assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create assignment payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	files := form.File["attachments"]

	assignment, err := c.assignmentService.Create(ctx.Request.Context(), user, &req, files)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment))
}

// Submit records the caller's deliverable on an assignment
// @Summary Submit work for an assignment
// @Description Records the submission. Submitting again replaces the time and files but keeps any grade already given.
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Assignment ID"
// @Param submissions formData file true "PDF files (max 5, 10MB each)"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionResponse}
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	assignmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	files := form.File["submissions"]

	submission, err := c.assignmentService.Submit(ctx.Request.Context(), user, assignmentID, files)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}

// GradeSubmission records a grade on one submission
// @Summary Grade a submission
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param request body dto.GradeSubmissionRequest true "Grade in [0, 10]"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Grade out of range"
// @Failure 403 {object} dto.ErrorResponse "Caller did not create the assignment"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /assignments/submissions/{id}/grade [put]
func (c *AssignmentController) GradeSubmission(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	submissionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.assignmentService.GradeSubmission(ctx.Request.Context(), user, submissionID, *req.Grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "submission graded"}))
}

// DownloadAttachment streams an assignment attachment
// @Summary Download an assignment attachment
// @Tags assignments
// @Produce application/pdf
// @Param id path int true "Assignment ID"
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Assignment or file not found"
// @Router /assignments/{id}/download/{filename} [get]
func (c *AssignmentController) DownloadAttachment(ctx *gin.Context) {
	assignmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	filename := ctx.Param("filename")

	path, err := c.assignmentService.ResolveAttachment(ctx.Request.Context(), assignmentID, filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filename)
}

// DownloadSubmissionFile streams a file from one submission
// @Summary Download a submission file
// @Tags assignments
// @Produce application/pdf
// @Param id path int true "Submission ID"
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse "Caller may not fetch this submission"
// @Failure 404 {object} dto.ErrorResponse "Submission or file not found"
// @Router /assignments/submissions/{id}/download/{filename} [get]
func (c *AssignmentController) DownloadSubmissionFile(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	submissionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	filename := ctx.Param("filename")

	path, err := c.assignmentService.ResolveSubmissionFile(ctx.Request.Context(), user, submissionID, filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, filename)
}
