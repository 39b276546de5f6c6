package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/tdnghia/jobportal/internal/apperror"
	"github.com/tdnghia/jobportal/internal/dto"
)

// RespondError translates a service error into the client-facing JSON shape.
// Domain errors keep their stable message; anything else collapses to a
// generic one so internal detail stays in the server logs.
func RespondError(ctx *gin.Context, err error) {
	ctx.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Message: apperror.ClientMessage(err)})
}
