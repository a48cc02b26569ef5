package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/backend"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/controller"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/middleware"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/service"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/storage"
)

// Dependencies carries everything the route handlers need.
type Dependencies struct {
	Logger        *logrus.Logger
	SessionStore  *storage.SessionStore
	Backend       *backend.Client
	Calling       *service.CallingService
	Registry      *service.ToolRegistry
	Agent         *service.AgentService
	Poller        *service.HistoryPoller
	Notifications *service.NotificationManager
}

// NewRouter sets up the gin engine for the dashboard gateway: public login
// and swagger routes, and session-guarded dashboard routes for everything
// else.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	sessions := controller.NewSessionController(deps.SessionStore, deps.Logger)
	calling := controller.NewCallingController(deps.Calling, deps.Logger)
	results := controller.NewResultsController(deps.Poller, deps.Notifications, deps.Logger)
	tools := controller.NewToolsController(deps.Registry, deps.Agent, deps.Logger)
	proxy := controller.NewProxyController(deps.Backend, deps.Logger)

	r.POST("/login", sessions.Login)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	dashboard := r.Group("/", middleware.SessionRequiredMiddleware(deps.SessionStore))
	{
		dashboard.POST("/logout", sessions.Logout)
		dashboard.GET("/session", sessions.Current)

		dashboard.GET("/queue", calling.List)
		dashboard.POST("/queue", calling.Add)
		dashboard.POST("/queue/import", calling.Import)
		dashboard.POST("/queue/reorder", calling.Reorder)
		dashboard.POST("/queue/start-next", calling.StartNext)
		dashboard.POST("/queue/end-session", calling.EndSession)
		dashboard.PATCH("/queue/:id", calling.Edit)
		dashboard.DELETE("/queue/:id", calling.Delete)

		dashboard.GET("/call-session", calling.ActiveCallSession)

		dashboard.POST("/inbound/start", calling.StartInbound)
		dashboard.POST("/inbound/stop", calling.StopInbound)

		dashboard.GET("/call-history", results.History)
		dashboard.GET("/notifications", results.ActiveNotifications)
		dashboard.DELETE("/notifications/:id", results.Dismiss)

		dashboard.GET("/tools", tools.List)
		dashboard.PUT("/tools/status", tools.UpdateStatus)
		dashboard.GET("/agent-configuration", tools.AgentConfiguration)
		dashboard.PUT("/agent-configuration", tools.UpdateAgentConfiguration)

		dashboard.GET("/human-experts", proxy.Forward("/human-experts"))
		dashboard.POST("/human-experts", proxy.Forward("/create-human-expert"))
		dashboard.DELETE("/human-experts/:id", proxy.Forward("/human-experts"))

		dashboard.GET("/documents", proxy.Forward("/documents"))
		dashboard.POST("/documents", proxy.Forward("/upload-document"))
		dashboard.DELETE("/documents/:id", proxy.Forward("/documents"))

		dashboard.GET("/databases", proxy.Forward("/get-databases"))
		dashboard.DELETE("/databases", proxy.Forward("/delete-database"))
	}

	return r
}
