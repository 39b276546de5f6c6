package student

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tdnghia/jobportal/internal/controller"
	"github.com/tdnghia/jobportal/internal/dto"
	"github.com/tdnghia/jobportal/internal/middleware"
	"github.com/tdnghia/jobportal/internal/model"
	"github.com/tdnghia/jobportal/internal/service"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// ListAvailableTests godoc
// @Summary (Student) List available tests
// @Description List active tests the calling student has not attempted yet, newest first. An empty list is a normal response.
// @Tags Student - Assessments
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/available [get]
func (c *AssessmentController) ListAvailableTests(ctx *gin.Context) {
	identity := middleware.IdentityFrom(ctx)
	tests, err := c.assessmentService.ListAvailableTests(identity.Subject)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTest godoc
// @Summary Get one test
// @Description Fetch a test by ID. Students receive the redacted projection without correct options; recruiters receive the full one.
// @Tags Student - Assessments
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestForCandidate
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/{test_id} [get]
func (c *AssessmentController) GetTest(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}

	// Projection is picked by an explicit role check; the candidate DTO
	// type cannot carry the answer key at all.
	if middleware.IdentityFrom(ctx).Role == model.RoleRecruiter {
		test, err := c.assessmentService.GetTestForAuthor(testID)
		if err != nil {
			controller.RespondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, test)
		return
	}

	test, err := c.assessmentService.GetTestForCandidate(testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// SubmitTest godoc
// @Summary (Student) Submit answers for a test
// @Description Submit the positional answer list for a test. Each candidate may submit exactly once; a second submission fails with a conflict.
// @Tags Student - Assessments
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param submission body dto.SubmitTestDTO true "Positional answers"
// @Success 201 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already attempted"
// @Security BearerAuth
// @Router /tests/{test_id}/submit [post]
func (c *AssessmentController) SubmitTest(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}
	var req dto.SubmitTestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	identity := middleware.IdentityFrom(ctx)
	result, err := c.assessmentService.SubmitTest(testID, service.Submitter{
		ID:    identity.Subject,
		Name:  identity.Name,
		Email: identity.Email,
	}, req.Answers)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetResults godoc
// @Summary Get results for a test
// @Description Recruiters see every result for the test; students see only their own. Submitted answers are never included.
// @Tags Student - Assessments
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {array} dto.TestResultDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tests/{test_id}/results [get]
func (c *AssessmentController) GetResults(ctx *gin.Context) {
	testID, ok := parseTestID(ctx)
	if !ok {
		return
	}
	identity := middleware.IdentityFrom(ctx)
	results, err := c.assessmentService.GetResults(testID, identity.Subject, identity.Role)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

func parseTestID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid test ID format"})
		return 0, false
	}
	return uint(id), true
}
