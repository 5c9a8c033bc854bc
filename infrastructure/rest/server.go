package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"teamboard/observability"
	"teamboard/services"
	"teamboard/storage"
)

// Server exposes the HTTP surface: the JSON API for projects, rooms and auth,
// plus the websocket endpoint feeding the chat pipeline.
type Server struct {
	log         *slog.Logger
	auth        services.IAuthService
	projects    services.IProjectService
	chat        services.IChatService
	attachments storage.IAttachmentStore
	stats       *observability.ChatStats
	httpServer  *http.Server
	wsBuffer    int
}

func NewServer(log *slog.Logger, addr string,
	auth services.IAuthService, projects services.IProjectService,
	chat services.IChatService, attachments storage.IAttachmentStore,
	stats *observability.ChatStats, wsBuffer int) *Server {
	s := &Server{
		log:         log,
		auth:        auth,
		projects:    projects,
		chat:        chat,
		attachments: attachments,
		stats:       stats,
		wsBuffer:    wsBuffer,
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.Handle("POST /api/projects", s.authenticated(s.handleCreateProject))
	mux.Handle("GET /api/projects/{id}", s.authenticated(s.handleGetProject))
	mux.Handle("PUT /api/projects/{id}", s.authenticated(s.handleUpdateProject))
	mux.Handle("GET /api/projects", s.authenticated(s.handleListProjects))
	mux.Handle("GET /api/notifications", s.authenticated(s.handleNotifications))

	mux.Handle("POST /api/rooms", s.authenticated(s.handleCreateRoom))
	mux.Handle("GET /api/rooms", s.authenticated(s.handleListRooms))
	mux.Handle("GET /api/rooms/{id}/messages", s.authenticated(s.handleHistory))
	mux.Handle("GET /api/rooms/{id}/search", s.authenticated(s.handleSearch))

	mux.Handle("POST /api/attachments", s.authenticated(s.handleUploadAttachment))
	mux.Handle("GET /api/attachments/{id}", s.authenticated(s.handleDownloadAttachment))

	mux.HandleFunc("GET /ws", s.handleWebsocket)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Start serves until the context is canceled, then drains connections with a
// bounded shutdown window.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("Shutting down HTTP server")
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
