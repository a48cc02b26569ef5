package controller

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/backend"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/schemas"
)

// ProxyController forwards the auxiliary CRUD surfaces (human experts,
// documents, connected databases) to the backend verbatim. The gateway owns
// none of these entities and does not interpret their payloads.
type ProxyController struct {
	Backend *backend.Client
	Logger  *logrus.Logger
}

// NewProxyController creates a proxy controller.
func NewProxyController(client *backend.Client, log *logrus.Logger) *ProxyController {
	return &ProxyController{Backend: client, Logger: log}
}

// Forward returns a handler that relays the request to the given backend
// path, substituting the :id parameter when present.
func (c *ProxyController) Forward(path string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		target := path
		if id := ctx.Param("id"); id != "" {
			target = path + "/" + id
		}

		resp, err := c.Backend.Forward(
			ctx.Request.Context(),
			ctx.Request.Method,
			target,
			ctx.Request.Body,
			ctx.GetHeader("Content-Type"),
		)
		if err != nil {
			sendError(ctx, c.Logger, schemas.NewBadGatewayError(err.Error(), target))
			return
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			sendError(ctx, c.Logger, schemas.NewBadGatewayError("failed to read backend response", target))
			return
		}

		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/json"
		}
		ctx.Data(resp.StatusCode, contentType, body)
	}
}
