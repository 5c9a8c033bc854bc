package services

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"time"

	"teamboard/domain"
	"teamboard/errors"
	"teamboard/repositories"

	"github.com/google/uuid"
)

type IProjectService interface {
	CreateProject(project domain.Project) (domain.Project, error)
	GetProject(id domain.ProjectID) (domain.Project, error)
	UpdateProject(requester string, project domain.Project) (domain.Project, error)
	ListTasks(username string) ([]domain.Project, error)
	Notifications(username string, now time.Time) ([]domain.Notification, error)
	CreateChatRoom(room domain.ChatRoom) (domain.ChatRoom, error)
	ListChatRooms(username string) ([]domain.ChatRoom, error)
}

// ProjectService owns the record update path: ownership checks, the
// full-document overwrite semantics, and the merge of project members into
// the associated chat room.
type ProjectService struct {
	projects   repositories.IProjectRepository
	rooms      repositories.IChatRoomRepository
	maxRetries int
	log        *slog.Logger
}

func NewProjectService(projects repositories.IProjectRepository,
	rooms repositories.IChatRoomRepository,
	maxRetries int, log *slog.Logger) *ProjectService {
	return &ProjectService{projects: projects, rooms: rooms, maxRetries: maxRetries, log: log}
}

func (s *ProjectService) CreateProject(project domain.Project) (domain.Project, error) {
	if project.ID == "" {
		project.ID = domain.ProjectID(uuid.NewString())
	}
	project.Version = 0
	return s.projects.SaveProject(project)
}

func (s *ProjectService) GetProject(id domain.ProjectID) (domain.Project, error) {
	return s.projects.FindProjectByID(id)
}

// UpdateProject replaces the stored project's mutable fields with the
// caller-supplied document, then unions the incoming member names into the
// room registered under the project's name. Both writes go through the retry
// executor independently; a conflict on the room side does not roll back the
// project save.
func (s *ProjectService) UpdateProject(requester string, project domain.Project) (domain.Project, error) {
	stored, err := s.projects.FindProjectByID(project.ID)
	if err != nil {
		return domain.Project{}, err
	}
	if stored.Owner != requester {
		return domain.Project{}, fmt.Errorf("%w: project %s", errors.ErrUnauthorized, project.ID)
	}

	// Full-document overwrite, not a field-level patch. Owner and Version
	// are the only fields the caller cannot touch.
	stored.Name = project.Name
	stored.Description = project.Description
	stored.Members = project.Members

	saved, err := ExecuteWithRetry(stored, s.projects.SaveProject, s.maxRetries)
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.mergeRoomMembers(saved); err != nil {
		return domain.Project{}, err
	}
	return saved, nil
}

// mergeRoomMembers resolves the chat room by project name (by value; a rename
// orphans the old lookup) and writes back the union of memberships.
func (s *ProjectService) mergeRoomMembers(project domain.Project) error {
	room, err := s.rooms.FindChatRoomByProjectName(project.Name)
	if goerrors.Is(err, errors.ErrNotFound) {
		s.log.Debug("no chat room registered for project", "project", project.Name)
		return nil
	}
	if err != nil {
		return err
	}

	room.MergeMembers(project.MemberNames())
	_, err = ExecuteWithRetry(room, s.rooms.SaveChatRoom, s.maxRetries)
	return err
}

// ListTasks returns the projects in which the user appears as a member.
func (s *ProjectService) ListTasks(username string) ([]domain.Project, error) {
	return s.projects.FindProjectsByMember(username)
}

// Notifications derives days-remaining entries for every membership deadline
// of the user.
func (s *ProjectService) Notifications(username string, now time.Time) ([]domain.Notification, error) {
	projects, err := s.projects.FindProjectsByMember(username)
	if err != nil {
		return nil, err
	}
	return domain.NotificationsFor(username, projects, now), nil
}

func (s *ProjectService) CreateChatRoom(room domain.ChatRoom) (domain.ChatRoom, error) {
	if room.ID == "" {
		room.ID = domain.RoomID(uuid.NewString())
	}
	room.Version = 0
	return s.rooms.SaveChatRoom(room)
}

func (s *ProjectService) ListChatRooms(username string) ([]domain.ChatRoom, error) {
	return s.rooms.FindChatRoomsByMember(username)
}
