package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"teamboard/domain"
	"teamboard/domain/search"
	"teamboard/errors"

	"github.com/google/uuid"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := s.auth.Register(req.Username, req.Password)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, tokenResponse{Token: string(token)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tokenResponse{Token: string(token)})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var project domain.Project
	if err := decodeJSON(r, &project); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	project.Owner = callerFrom(r)

	saved, err := s.projects.CreateProject(project)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.projects.GetProject(domain.ProjectID(r.PathValue("id")))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var project domain.Project
	if err := decodeJSON(r, &project); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	project.ID = domain.ProjectID(r.PathValue("id"))

	saved, err := s.projects.UpdateProject(callerFrom(r), project)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	member := r.URL.Query().Get("member")
	if member == "" {
		member = callerFrom(r)
	}

	projects, err := s.projects.ListTasks(member)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	member := r.URL.Query().Get("member")
	if member == "" {
		member = callerFrom(r)
	}

	notifications, err := s.projects.Notifications(member, time.Now().UTC())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var room domain.ChatRoom
	if err := decodeJSON(r, &room); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := s.projects.CreateChatRoom(room)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	member := r.URL.Query().Get("member")
	if member == "" {
		member = callerFrom(r)
	}

	rooms, err := s.projects.ListChatRooms(member)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rooms)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	roomID := domain.RoomID(r.PathValue("id"))
	s.writeJSON(w, http.StatusOK, s.chat.History(roomID))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	roomID := domain.RoomID(r.PathValue("id"))
	query := search.NewQuery(r.URL.Query().Get("q"))

	results, err := s.chat.SearchMessages(r.Context(), roomID, query)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, results)
}

const maxUploadSize = 32 << 20

func (s *Server) handleUploadAttachment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart request", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	attachment, err := s.attachments.Store(header.Filename, file)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, attachment)
}

func (s *Server) handleDownloadAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid attachment id", http.StatusBadRequest)
		return
	}

	content, err := s.attachments.Open(id)
	if err != nil {
		http.Error(w, "attachment not found", http.StatusNotFound)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, content); err != nil {
		s.log.Error("Attachment download interrupted", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.stats.GetLatest())
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := errors.MapToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "error", err)
	} else {
		s.log.Debug("Request rejected", "status", status, "error", err)
	}
	http.Error(w, err.Error(), status)
}
