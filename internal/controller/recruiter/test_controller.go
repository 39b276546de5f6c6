package recruiter

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tdnghia/jobportal/internal/controller"
	"github.com/tdnghia/jobportal/internal/dto"
	"github.com/tdnghia/jobportal/internal/middleware"
	"github.com/tdnghia/jobportal/internal/service"
)

type TestController struct {
	testService service.RecruiterTestService
}

func NewTestController(testService service.RecruiterTestService) *TestController {
	return &TestController{testService: testService}
}

// CreateTest godoc
// @Summary (Recruiter) Create a new test
// @Description Create a test with its full question list for one of the recruiter's jobs.
// @Tags Recruiter - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test fields including all questions"
// @Success 201 {object} dto.TestForAuthor
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	identity := middleware.IdentityFrom(ctx)
	test, err := c.testService.CreateTest(identity.Subject, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// ListTests godoc
// @Summary (Recruiter) List own tests
// @Description List all tests created by the calling recruiter, newest first.
// @Tags Recruiter - Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	identity := middleware.IdentityFrom(ctx)
	tests, err := c.testService.ListOwnTests(identity.Subject)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// UpdateTest godoc
// @Summary (Recruiter) Update a test
// @Description Partially update test metadata. Only the creator may update; the question list is immutable after creation.
// @Tags Recruiter - Tests
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "Fields to update"
// @Success 200 {object} dto.TestForAuthor
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/{test_id} [patch]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	identity := middleware.IdentityFrom(ctx)
	test, err := c.testService.UpdateTest(testID, identity.Subject, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// DeleteTest godoc
// @Summary (Recruiter) Delete a test
// @Description Delete a test. Only the creator may delete.
// @Tags Recruiter - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.ErrorResponse "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/{test_id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}
	identity := middleware.IdentityFrom(ctx)
	if err := c.testService.DeleteTest(testID, identity.Subject); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "test deleted successfully"})
}

func parseTestID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid test ID format"})
		return 0, false
	}
	return uint(id), true
}
