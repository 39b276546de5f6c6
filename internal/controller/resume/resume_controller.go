package resume

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/tdnghia/jobportal/internal/controller"
	"github.com/tdnghia/jobportal/internal/dto"
	"github.com/tdnghia/jobportal/internal/service"
)

type ResumeController struct {
	resumeService service.ResumeService
}

func NewResumeController(resumeService service.ResumeService) *ResumeController {
	return &ResumeController{resumeService: resumeService}
}

// GenerateResume godoc
// @Summary Generate a resume PDF
// @Description Render the submitted resume payload to a PDF and stream it back as a download. Nothing is persisted.
// @Tags Resume
// @Accept json
// @Produce application/pdf
// @Param resume body dto.ResumePayload true "Resume content"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse "Full name missing"
// @Failure 503 {object} dto.ErrorResponse "Typesetting compiler unavailable"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /resume/generate [post]
func (c *ResumeController) GenerateResume(ctx *gin.Context) {
	var payload dto.ResumePayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		log.Warn().Err(err).Msg("GenerateResume: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body", Details: []string{err.Error()}})
		return
	}

	rendered, err := c.resumeService.GenerateResume(ctx.Request.Context(), payload)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename=`+rendered.Filename)
	ctx.Data(http.StatusOK, "application/pdf", rendered.PDF)
}
