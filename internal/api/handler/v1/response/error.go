package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photocontest-api/internal/domain"
)

type Err struct {
	statusCode int
	err        error

	Msg string `json:"error"`
}

func NewErr(statusCode int, err error) *Err {
	return &Err{
		statusCode: statusCode,
		err:        err,
		Msg:        err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err)
}

func ErrWrongCredentials(err error) *Err {
	return NewErr(http.StatusUnauthorized, err)
}

func ErrPermissionDenied(err error) *Err {
	return NewErr(http.StatusForbidden, err)
}

func ErrNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, err)
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err)
}

func ErrBadGateway(err error) *Err {
	return NewErr(http.StatusBadGateway, err)
}

func ErrInternalServerError(err error) *Err {
	return NewErr(http.StatusInternalServerError, err)
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.statusCode >= http.StatusInternalServerError {
		zap.L().Error(err.Msg,
			zap.String("request_id", requestid.Get(ctx)),
			zap.Int("status_code", err.statusCode),
			zap.Error(err.err))

		// Internal details stay in the logs.
		err.Msg = http.StatusText(err.statusCode)
	}

	ctx.JSON(err.statusCode, err)
}

// RenderDomainErr maps a domain rejection to its HTTP status. Anything that
// is not a rejection is treated as an internal error.
func RenderDomainErr(ctx *gin.Context, err error) {
	rejection, ok := domain.AsRejection(err)
	if !ok {
		RenderErr(ctx, ErrInternalServerError(err))
		return
	}

	switch rejection.Kind {
	case domain.KindNotFound:
		RenderErr(ctx, ErrNotFound(rejection))
	case domain.KindAuthorizationDenied:
		RenderErr(ctx, ErrPermissionDenied(rejection))
	case domain.KindValidationFailed:
		RenderErr(ctx, ErrBadRequest(rejection))
	case domain.KindStateViolation, domain.KindRuleRejected:
		RenderErr(ctx, ErrConflict(rejection))
	case domain.KindCollaboratorFailure:
		RenderErr(ctx, ErrBadGateway(rejection))
	default:
		RenderErr(ctx, ErrInternalServerError(rejection))
	}
}
