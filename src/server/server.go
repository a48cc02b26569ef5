package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/logger"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/backend"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/config"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/db"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/queue"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/rabbitmq"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/repository"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/router"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/service"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/storage"

	_ "github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/docs"
)

// Server wires the dashboard gateway together: HTTP surface, call-history
// poller, database and RabbitMQ handles.
type Server struct {
	config          *config.GlobalConfig
	database        *db.DB
	publisher       *rabbitmq.AMQPPublisher
	poller          *service.HistoryPoller
	pollerCancel    context.CancelFunc
	http            *http.Server
	shutdownHandler ShutdownHandlerInterface
}

// NewServer creates a new server instance and connects its collaborators.
func NewServer(cfg *config.GlobalConfig) (*Server, error) {
	database, err := db.NewDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	publisher, err := rabbitmq.NewAMQPPublisher(cfg.GetRabbitMQURL())
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	server := &Server{
		config:    cfg,
		database:  database,
		publisher: publisher,
	}
	server.shutdownHandler = NewShutdownHandler(server)
	return server, nil
}

// Run starts the server with graceful shutdown using ShutdownHandler
func (s *Server) Run() error {
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	serverDone := s.startServerGoroutine()

	return s.shutdownHandler.HandleShutdown(serverDone, osSignals)
}

// startServerGoroutine assembles the services, starts the poller and the
// HTTP server, and returns a channel carrying the server's exit error.
func (s *Server) startServerGoroutine() chan error {
	serverDone := make(chan error, 1)

	go func() {
		sessionStore := storage.NewSessionStore(s.config.GetSessionFile())
		backendClient := backend.NewClient(s.config.GetBackendAPIAddr())

		sessions := service.NewSessionState()
		callingQueue := queue.NewQueue()
		repo := repository.NewCallSessionRepository(s.database)

		calling := service.NewCallingService(callingQueue, backendClient, sessions, repo)
		registry := service.NewToolRegistry(backendClient, sessions)
		agent := service.NewAgentService(backendClient, sessions)
		notifications := service.NewNotificationManager(s.publisher)
		s.poller = service.NewHistoryPoller(backendClient, notifications)

		pollerCtx, cancel := context.WithCancel(context.Background())
		s.pollerCancel = cancel
		go s.poller.Run(pollerCtx)

		// Warm the tool cache; a cold backend is not fatal, the next
		// /tools request retries.
		if err := registry.Load(pollerCtx); err != nil {
			slog.Warn("Initial tool load failed", "error", err)
		}

		r := router.NewRouter(router.Dependencies{
			Logger:        logger.Logger,
			SessionStore:  sessionStore,
			Backend:       backendClient,
			Calling:       calling,
			Registry:      registry,
			Agent:         agent,
			Poller:        s.poller,
			Notifications: notifications,
		})

		httpServer := &http.Server{
			Addr:    fmt.Sprintf("%s:%s", s.config.GetHost(), s.config.GetPort()),
			Handler: r,
		}
		s.http = httpServer

		slog.Info("Starting dashboard gateway",
			"host", s.config.GetHost(),
			"port", s.config.GetPort())

		serverDone <- s.startServer()
	}()

	return serverDone
}

// startServer starts the HTTP server and handles errors
func (s *Server) startServer() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
