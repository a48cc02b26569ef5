package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/models"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/schemas"
)

// sendError writes an RFC 7807 error response and logs it.
func sendError(ctx *gin.Context, log *logrus.Logger, resp *schemas.ErrorResponse) {
	ctx.JSON(resp.Status, resp)
	if log != nil {
		log.Error(resp.Title + ": " + resp.Detail)
	}
}

// sendDomainError translates service-layer errors into RFC 7807 responses.
// Backend failures become 502s so a flaky upstream is distinguishable from a
// gateway bug.
func sendDomainError(ctx *gin.Context, log *logrus.Logger, err error, instance string) {
	var resp *schemas.ErrorResponse
	var serviceErr *models.ServiceError

	switch {
	case errors.As(err, &resp):
		// Already shaped; pass through.
	case errors.Is(err, models.ErrQueueEmpty):
		resp = schemas.QueueEmptyError(instance)
	case errors.Is(err, models.ErrSessionInProgress):
		resp = schemas.SessionInProgressError(err.Error(), instance)
	case errors.Is(err, models.ErrEntryNotFound), errors.Is(err, models.ErrToolNotFound),
		errors.Is(err, models.ErrNoCallSession):
		resp = schemas.NewNotFoundError(err.Error(), instance)
	case errors.Is(err, models.ErrAlreadyCalling), errors.Is(err, models.ErrToggleInFlight):
		resp = schemas.NewConflictError(err.Error(), instance)
	case errors.As(err, &serviceErr):
		resp = schemas.NewBadGatewayError(serviceErr.Message, instance)
	default:
		resp = schemas.NewInternalError(err.Error(), instance)
	}

	sendError(ctx, log, resp)
}
