package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"teamboard/domain"
	"teamboard/errors"
	"teamboard/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProjectService_UpdateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := domain.Project{
		ID:    "p-1",
		Name:  "apollo",
		Owner: "alice",
		Members: []domain.Member{
			{Name: "alice", Task: "write docs"},
			{Name: "bob", Task: "review"},
		},
		Version: 3,
	}

	t.Run("should overwrite document and merge members into the room", func(t *testing.T) {
		req := require.New(t)
		mockProjects := mocks.NewMockIProjectRepository(ctrl)
		mockRooms := mocks.NewMockIChatRoomRepository(ctrl)
		svc := NewProjectService(mockProjects, mockRooms, DefaultMaxRetries, silentLogger())

		incoming := domain.Project{
			ID:          "p-1",
			Name:        "apollo",
			Description: "new description",
			Owner:       "mallory", // caller-supplied owner must be ignored
			Members: []domain.Member{
				{Name: "alice", Task: "write docs"},
				{Name: "carol", Task: "qa"},
			},
			Version: 99, // caller-supplied version must be ignored
		}

		mockProjects.EXPECT().FindProjectByID(domain.ProjectID("p-1")).Return(stored, nil)
		mockProjects.EXPECT().
			SaveProject(gomock.Any()).
			DoAndReturn(func(p domain.Project) (domain.Project, error) {
				req.Equal("alice", p.Owner)
				req.Equal(uint64(3), p.Version)
				req.Equal("new description", p.Description)
				p.Version++
				return p, nil
			})

		mockRooms.EXPECT().
			FindChatRoomByProjectName("apollo").
			Return(domain.ChatRoom{ID: "room-1", ProjectName: "apollo",
				Members: []string{"alice", "bob"}, Version: 1}, nil)
		mockRooms.EXPECT().
			SaveChatRoom(gomock.Any()).
			DoAndReturn(func(r domain.ChatRoom) (domain.ChatRoom, error) {
				// Union of old membership and incoming member names.
				req.Equal([]string{"alice", "bob", "carol"}, r.Members)
				r.Version++
				return r, nil
			})

		saved, err := svc.UpdateProject("alice", incoming)

		req.NoError(err)
		req.Equal(uint64(4), saved.Version)
	})

	t.Run("should reject non-owner updates", func(t *testing.T) {
		req := require.New(t)
		mockProjects := mocks.NewMockIProjectRepository(ctrl)
		mockRooms := mocks.NewMockIChatRoomRepository(ctrl)
		svc := NewProjectService(mockProjects, mockRooms, DefaultMaxRetries, silentLogger())

		mockProjects.EXPECT().FindProjectByID(domain.ProjectID("p-1")).Return(stored, nil)
		mockProjects.EXPECT().SaveProject(gomock.Any()).Times(0)

		_, err := svc.UpdateProject("bob", domain.Project{ID: "p-1", Name: "apollo"})

		req.ErrorIs(err, errors.ErrUnauthorized)
	})

	t.Run("should fail when project does not exist", func(t *testing.T) {
		req := require.New(t)
		mockProjects := mocks.NewMockIProjectRepository(ctrl)
		mockRooms := mocks.NewMockIChatRoomRepository(ctrl)
		svc := NewProjectService(mockProjects, mockRooms, DefaultMaxRetries, silentLogger())

		mockProjects.EXPECT().
			FindProjectByID(domain.ProjectID("ghost")).
			Return(domain.Project{}, errors.ErrNotFound)

		_, err := svc.UpdateProject("alice", domain.Project{ID: "ghost"})

		req.ErrorIs(err, errors.ErrNotFound)
	})

	t.Run("should retry a conflicted save and eventually succeed", func(t *testing.T) {
		req := require.New(t)
		mockProjects := mocks.NewMockIProjectRepository(ctrl)
		mockRooms := mocks.NewMockIChatRoomRepository(ctrl)
		svc := NewProjectService(mockProjects, mockRooms, DefaultMaxRetries, silentLogger())

		mockProjects.EXPECT().FindProjectByID(domain.ProjectID("p-1")).Return(stored, nil)

		gomock.InOrder(
			mockProjects.EXPECT().SaveProject(gomock.Any()).
				Return(domain.Project{}, errors.ErrVersionConflict),
			mockProjects.EXPECT().SaveProject(gomock.Any()).
				Return(domain.Project{}, errors.ErrVersionConflict),
			mockProjects.EXPECT().SaveProject(gomock.Any()).
				DoAndReturn(func(p domain.Project) (domain.Project, error) {
					p.Version++
					return p, nil
				}),
		)

		mockRooms.EXPECT().
			FindChatRoomByProjectName("apollo").
			Return(domain.ChatRoom{}, errors.ErrNotFound)

		saved, err := svc.UpdateProject("alice", stored)

		req.NoError(err)
		req.Equal(uint64(4), saved.Version)
	})

	t.Run("should succeed even when no chat room is registered", func(t *testing.T) {
		req := require.New(t)
		mockProjects := mocks.NewMockIProjectRepository(ctrl)
		mockRooms := mocks.NewMockIChatRoomRepository(ctrl)
		svc := NewProjectService(mockProjects, mockRooms, DefaultMaxRetries, silentLogger())

		mockProjects.EXPECT().FindProjectByID(domain.ProjectID("p-1")).Return(stored, nil)
		mockProjects.EXPECT().SaveProject(gomock.Any()).
			DoAndReturn(func(p domain.Project) (domain.Project, error) {
				p.Version++
				return p, nil
			})
		mockRooms.EXPECT().
			FindChatRoomByProjectName("apollo").
			Return(domain.ChatRoom{}, errors.ErrNotFound)
		mockRooms.EXPECT().SaveChatRoom(gomock.Any()).Times(0)

		_, err := svc.UpdateProject("alice", stored)

		req.NoError(err)
	})
}

func TestProjectService_CreateProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should assign an id and start at version zero", func(t *testing.T) {
		req := require.New(t)
		mockProjects := mocks.NewMockIProjectRepository(ctrl)
		mockRooms := mocks.NewMockIChatRoomRepository(ctrl)
		svc := NewProjectService(mockProjects, mockRooms, DefaultMaxRetries, silentLogger())

		mockProjects.EXPECT().
			SaveProject(gomock.Any()).
			DoAndReturn(func(p domain.Project) (domain.Project, error) {
				req.NotEmpty(p.ID)
				req.Equal(uint64(0), p.Version)
				p.Version = 1
				return p, nil
			})

		saved, err := svc.CreateProject(domain.Project{Name: "apollo", Owner: "alice", Version: 42})

		req.NoError(err)
		req.Equal(uint64(1), saved.Version)
	})
}

func TestProjectService_Notifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	mockProjects := mocks.NewMockIProjectRepository(ctrl)
	mockRooms := mocks.NewMockIChatRoomRepository(ctrl)
	svc := NewProjectService(mockProjects, mockRooms, DefaultMaxRetries, silentLogger())

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(72 * time.Hour)

	mockProjects.EXPECT().
		FindProjectsByMember("bob").
		Return([]domain.Project{
			{
				Name: "apollo",
				Members: []domain.Member{
					{Name: "alice", Task: "write docs", Deadline: deadline},
					{Name: "bob", Task: "review", Deadline: deadline},
					{Name: "bob", Task: "deploy"}, // no deadline, no notification
				},
			},
		}, nil)

	notifications, err := svc.Notifications("bob", now)

	req.NoError(err)
	req.Len(notifications, 1)
	req.Equal("review", notifications[0].Task)
	req.Equal(3, notifications[0].DaysLeft)
}
