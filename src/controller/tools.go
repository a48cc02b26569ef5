package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/schemas"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/service"
)

// ToolsController exposes the tool-registry mirror and the agent
// configuration proxy.
type ToolsController struct {
	Registry *service.ToolRegistry
	Agent    *service.AgentService
	Logger   *logrus.Logger
}

// NewToolsController creates a tools controller.
func NewToolsController(registry *service.ToolRegistry, agent *service.AgentService, log *logrus.Logger) *ToolsController {
	return &ToolsController{Registry: registry, Agent: agent, Logger: log}
}

// @Summary List available tools
// @Description Refreshes the cache from the backend and returns it
// @Tags tools
// @Produce json
// @Success 200 {object} schemas.ToolsResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /tools [get]
func (c *ToolsController) List(ctx *gin.Context) {
	if err := c.Registry.Load(ctx.Request.Context()); err != nil {
		sendDomainError(ctx, c.Logger, err, "/tools")
		return
	}
	ctx.JSON(http.StatusOK, schemas.ToolsResponse{Success: true, Tools: c.Registry.Tools()})
}

// @Summary Toggle a tool
// @Description Requests the backend to change the enabled flag; the cache only flips on confirmation
// @Tags tools
// @Accept json
// @Produce json
// @Param UpdateToolStatusRequest body schemas.UpdateToolStatusRequest true "Toggle Request"
// @Success 200 {object} schemas.UpdateToolStatusResponse
// @Failure 404 {object} schemas.ErrorResponse
// @Failure 409 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /tools/status [put]
func (c *ToolsController) UpdateStatus(ctx *gin.Context) {
	var req schemas.UpdateToolStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), "/tools/status"))
		return
	}

	if err := c.Registry.Toggle(ctx.Request.Context(), req.ToolID, *req.Enabled); err != nil {
		sendDomainError(ctx, c.Logger, err, "/tools/status")
		return
	}

	ctx.JSON(http.StatusOK, schemas.UpdateToolStatusResponse{
		Success: true,
		ToolID:  req.ToolID,
		Enabled: *req.Enabled,
		Message: "Tool status updated successfully",
	})
}

// @Summary Agent configuration
// @Tags agent
// @Produce json
// @Success 200 {object} schemas.AgentConfigurationResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /agent-configuration [get]
func (c *ToolsController) AgentConfiguration(ctx *gin.Context) {
	name, description, err := c.Agent.Configuration(ctx.Request.Context())
	if err != nil {
		sendDomainError(ctx, c.Logger, err, "/agent-configuration")
		return
	}
	ctx.JSON(http.StatusOK, schemas.AgentConfigurationResponse{
		Success:     true,
		Name:        name,
		Description: description,
	})
}

// @Summary Update agent configuration
// @Description Rejected while a calling session is in progress
// @Tags agent
// @Accept json
// @Produce json
// @Param AgentConfigurationRequest body schemas.AgentConfigurationRequest true "Update Request"
// @Success 200 {object} schemas.AgentConfigurationResponse
// @Failure 409 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /agent-configuration [put]
func (c *ToolsController) UpdateAgentConfiguration(ctx *gin.Context) {
	var req schemas.AgentConfigurationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), "/agent-configuration"))
		return
	}

	name, description, err := c.Agent.Update(ctx.Request.Context(), req.Name, req.Description)
	if err != nil {
		sendDomainError(ctx, c.Logger, err, "/agent-configuration")
		return
	}
	ctx.JSON(http.StatusOK, schemas.AgentConfigurationResponse{
		Success:     true,
		Name:        name,
		Description: description,
	})
}
