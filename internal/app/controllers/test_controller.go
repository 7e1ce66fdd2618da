package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/app/services"
	"github.com/IndiraMehta/EduTask/internal/middleware"
)

// TestController handles the test scheduling and grading workflow
type TestController struct {
	testService *services.TestService
	logger      zerolog.Logger
}

// NewTestController creates a new TestController
func NewTestController(testService *services.TestService, logger zerolog.Logger) *TestController {
	return &TestController{
		testService: testService,
		logger:      logger,
	}
}

// List returns tests from the caller's perspective
// @Summary List tests
// @Description Teachers get their own tests. Students get tests for their branch and year with a display status.
// @Tags tests
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TestResponse}
// @Router /tests [get]
func (c *TestController) List(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	tests, err := c.testService.ListForUser(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tests))
}

// TeacherOverview returns every owned test with its recorded grades
// @Summary List owned tests with all grades
// @Tags tests
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TestWithGradesResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Router /tests/teacher/grades [get]
func (c *TestController) TeacherOverview(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	overview, err := c.testService.TeacherOverview(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(overview))
}

// GetRoster returns the dense grading roster for a test
// @Summary Get the grading roster for a test
// @Description One entry per student in the test's audience. Score is absent for students not yet graded.
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.RosterEntryResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller did not create the test"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id}/grades [get]
func (c *TestController) GetRoster(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	testID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	roster, err := c.testService.GetRoster(ctx.Request.Context(), user, testID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roster))
}

// Create schedules a new test
// @Summary Schedule a test
// @Tags tests
// @Accept json
// @Produce json
// @Param request body dto.CreateTestRequest true "Test information"
// @Success 201 {object} dto.APIResponse{data=dto.TestResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller is not a teacher"
// @Router /tests [post]
func (c *TestController) Create(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create test payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	test, err := c.testService.Create(ctx.Request.Context(), user, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(test))
}

// Grade records one student's score on a test
// @Summary Grade a student on a test
// @Description Records the score. Grading the same student again replaces the previous score.
// @Tags tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param request body dto.GradeTestRequest true "Student and score in [0, 10]"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse}
// @Failure 400 {object} dto.ErrorResponse "Score out of range or student outside the audience"
// @Failure 403 {object} dto.ErrorResponse "Caller did not create the test"
// @Failure 404 {object} dto.ErrorResponse "Test or student not found"
// @Router /tests/{id}/grade [put]
func (c *TestController) Grade(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	testID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.GradeTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	grade, err := c.testService.Grade(ctx.Request.Context(), user, testID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// ExportGrades streams the roster as an xlsx workbook
// @Summary Export a test's grades as xlsx
// @Tags tests
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Test ID"
// @Success 200 {file} binary
// @Failure 403 {object} dto.ErrorResponse "Caller did not create the test"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id}/grades/export [get]
func (c *TestController) ExportGrades(ctx *gin.Context) {
	user, ok := mustCurrentUser(ctx)
	if !ok {
		return
	}

	testID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	workbook, filename, err := c.testService.ExportGrades(ctx.Request.Context(), user, testID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer workbook.Close()

	ctx.Header("Content-Disposition", "attachment; filename="+url.PathEscape(filename))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(ctx.Writer); err != nil {
		c.logger.Error().Err(err).Msg("Failed to stream grade export")
	}
}
