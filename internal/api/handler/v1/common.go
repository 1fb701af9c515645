package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"photocontest-api/internal/api/handler/v1/response"
	"photocontest-api/internal/api/middleware"
)

var errMissingAuthenticatedUser = errors.New("no authenticated user in request context")

func getUserIDFromContext(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		response.RenderErr(ctx, response.ErrWrongCredentials(errMissingAuthenticatedUser))
		return 0, false
	}

	userID, ok := v.(uint)
	if !ok || userID == 0 {
		response.RenderErr(ctx, response.ErrWrongCredentials(errMissingAuthenticatedUser))
		return 0, false
	}

	return userID, true
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New(name+" must be a positive integer")))
		return 0, false
	}

	return uint(id), true
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200 {string} string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
