package controller

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/queue"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/schemas"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/service"
)

// CallingController exposes the calling queue and the dialing operations.
type CallingController struct {
	Calling *service.CallingService
	Logger  *logrus.Logger
}

// NewCallingController creates a calling controller.
func NewCallingController(calling *service.CallingService, log *logrus.Logger) *CallingController {
	return &CallingController{Calling: calling, Logger: log}
}

// guardMutation rejects queue mutations while a calling session is active.
// Reads stay allowed; this is the advisory lock of the dashboard, the
// backend still enforces its own rules.
func (c *CallingController) guardMutation(ctx *gin.Context, instance string) bool {
	if c.Calling.InProgress() {
		sendError(ctx, c.Logger, schemas.SessionInProgressError(
			"no modifications allowed while calling is active", instance))
		return false
	}
	return true
}

// @Summary List the calling queue
// @Tags queue
// @Produce json
// @Success 200 {object} schemas.QueueResponse
// @Router /queue [get]
func (c *CallingController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, schemas.QueueResponse{Entries: c.Calling.Queue().Entries()})
}

// @Summary Add a queue entry
// @Tags queue
// @Accept json
// @Produce json
// @Param AddEntryRequest body schemas.AddEntryRequest true "New Entry"
// @Success 200 {object} schemas.QueueResponse
// @Failure 400 {object} schemas.ErrorResponse
// @Failure 409 {object} schemas.ErrorResponse
// @Router /queue [post]
func (c *CallingController) Add(ctx *gin.Context) {
	if !c.guardMutation(ctx, "/queue") {
		return
	}

	var req schemas.AddEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), "/queue"))
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("name and phone must not be empty", "/queue"))
		return
	}

	c.Calling.Queue().Add(req.Name, req.Phone, req.Notes)
	ctx.JSON(http.StatusOK, schemas.QueueResponse{Entries: c.Calling.Queue().Entries()})
}

// @Summary Bulk import queue entries from CSV
// @Description Accepts a CSV upload; headers are matched case-insensitively against name/phone/notes synonyms
// @Tags queue
// @Accept mpfd
// @Produce json
// @Success 200 {object} schemas.ImportResponse
// @Failure 400 {object} schemas.ErrorResponse
// @Router /queue/import [post]
func (c *CallingController) Import(ctx *gin.Context) {
	if !c.guardMutation(ctx, "/queue/import") {
		return
	}

	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("CSV file is required: "+err.Error(), "/queue/import"))
		return
	}
	defer file.Close()

	rows, err := queue.ParseCSV(file)
	if err != nil {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("failed to parse CSV: "+err.Error(), "/queue/import"))
		return
	}

	accepted := c.Calling.Queue().ImportBulk(rows)
	c.Logger.Infof("CSV import accepted %d of %d rows", accepted, len(rows))
	ctx.JSON(http.StatusOK, schemas.ImportResponse{
		Message:  fmt.Sprintf("Successfully added %d entries from CSV", accepted),
		Accepted: accepted,
	})
}

// @Summary Move a queue entry
// @Description Stable list move: the entry at from_index is reinserted at to_index
// @Tags queue
// @Accept json
// @Produce json
// @Param ReorderRequest body schemas.ReorderRequest true "Reorder Request"
// @Success 200 {object} schemas.QueueResponse
// @Failure 404 {object} schemas.ErrorResponse
// @Router /queue/reorder [post]
func (c *CallingController) Reorder(ctx *gin.Context) {
	if !c.guardMutation(ctx, "/queue/reorder") {
		return
	}

	var req schemas.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), "/queue/reorder"))
		return
	}

	if err := c.Calling.Queue().Reorder(req.FromIndex, req.ToIndex); err != nil {
		sendDomainError(ctx, c.Logger, err, "/queue/reorder")
		return
	}
	ctx.JSON(http.StatusOK, schemas.QueueResponse{Entries: c.Calling.Queue().Entries()})
}

// @Summary Edit a queue entry field
// @Tags queue
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param EditEntryRequest body schemas.EditEntryRequest true "Edit Request"
// @Success 200 {object} schemas.QueueResponse
// @Router /queue/{id} [patch]
func (c *CallingController) Edit(ctx *gin.Context) {
	instance := "/queue/" + ctx.Param("id")
	if !c.guardMutation(ctx, instance) {
		return
	}

	var req schemas.EditEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendError(ctx, c.Logger, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), instance))
		return
	}

	// Editing an unknown id or field is a silent no-op by design of the
	// queue contract; the caller still gets the current queue back.
	c.Calling.Queue().Edit(ctx.Param("id"), req.Field, req.Value)
	ctx.JSON(http.StatusOK, schemas.QueueResponse{Entries: c.Calling.Queue().Entries()})
}

// @Summary Delete a queue entry
// @Tags queue
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} schemas.QueueResponse
// @Failure 404 {object} schemas.ErrorResponse
// @Router /queue/{id} [delete]
func (c *CallingController) Delete(ctx *gin.Context) {
	instance := "/queue/" + ctx.Param("id")
	if !c.guardMutation(ctx, instance) {
		return
	}

	if !c.Calling.Queue().Remove(ctx.Param("id")) {
		sendError(ctx, c.Logger, schemas.NewNotFoundError("queue entry not found", instance))
		return
	}
	ctx.JSON(http.StatusOK, schemas.QueueResponse{Entries: c.Calling.Queue().Entries()})
}

// @Summary Dial the next pending entry
// @Description Optimistically marks the entry calling, requests the outbound call, and rolls back on failure
// @Tags queue
// @Produce json
// @Success 200 {object} schemas.StartNextResponse
// @Failure 409 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /queue/start-next [post]
func (c *CallingController) StartNext(ctx *gin.Context) {
	entry, sessionID, err := c.Calling.StartNext(ctx.Request.Context())
	if err != nil {
		sendDomainError(ctx, c.Logger, err, "/queue/start-next")
		return
	}

	ctx.JSON(http.StatusOK, schemas.StartNextResponse{
		Message:   "Outbound call initiated",
		Entry:     entry,
		SessionID: sessionID,
	})
}

// @Summary End the calling session
// @Description Transitions every calling entry to completed and lifts the session-in-progress lock
// @Tags queue
// @Produce json
// @Success 200 {object} schemas.EndSessionResponse
// @Router /queue/end-session [post]
func (c *CallingController) EndSession(ctx *gin.Context) {
	completed := c.Calling.EndSession(ctx.Request.Context())
	ctx.JSON(http.StatusOK, schemas.EndSessionResponse{
		Message:   "Session ended",
		Completed: completed,
	})
}

// @Summary Current call session
// @Description Returns the IN_PROGRESS call session row recorded for the active dial
// @Tags queue
// @Produce json
// @Success 200 {object} models.CallSession
// @Failure 404 {object} schemas.ErrorResponse
// @Router /call-session [get]
func (c *CallingController) ActiveCallSession(ctx *gin.Context) {
	session, err := c.Calling.ActiveSession(ctx.Request.Context())
	if err != nil {
		sendDomainError(ctx, c.Logger, err, "/call-session")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// @Summary Start the inbound agent
// @Tags calling
// @Produce json
// @Success 200 {object} schemas.MessageResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /inbound/start [post]
func (c *CallingController) StartInbound(ctx *gin.Context) {
	assistantID, err := c.Calling.StartInboundAgent(ctx.Request.Context())
	if err != nil {
		sendDomainError(ctx, c.Logger, err, "/inbound/start")
		return
	}
	ctx.JSON(http.StatusOK, schemas.MessageResponse{
		Message: "Inbound agent activated: " + assistantID,
	})
}

// @Summary Stop the calling agent
// @Tags calling
// @Produce json
// @Success 200 {object} schemas.MessageResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /inbound/stop [post]
func (c *CallingController) StopInbound(ctx *gin.Context) {
	if err := c.Calling.StopCalling(ctx.Request.Context()); err != nil {
		sendDomainError(ctx, c.Logger, err, "/inbound/stop")
		return
	}
	ctx.JSON(http.StatusOK, schemas.MessageResponse{Message: "Calling agent stopped"})
}
