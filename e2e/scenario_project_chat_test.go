package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testProjectChatSuite struct {
	BaseHttpSuite
}

func TestProjectChatSuite(t *testing.T) {
	suite.Run(t, &testProjectChatSuite{})
}

type projectPayload struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Owner       string          `json:"owner"`
	Members     []memberPayload `json:"members"`
	Version     uint64          `json:"version"`
}

type memberPayload struct {
	Name     string `json:"name"`
	Task     string `json:"task"`
	Deadline string `json:"deadline,omitempty"`
}

type roomPayload struct {
	ID          string   `json:"id"`
	ProjectName string   `json:"project_name"`
	Members     []string `json:"members"`
	Version     uint64   `json:"version"`
}

func (s *testProjectChatSuite) TestFullProjectChatFlow() {
	suffix := uuid.New().String()[:8]
	alice := "alice" + suffix
	bob := "bob" + suffix

	var aliceToken, bobToken string
	var project projectPayload
	var room roomPayload

	s.Run("Step 0: Register both participants", func() {
		aliceToken = s.Register(alice, "Str0ngPassw0rd!"+suffix)
		bobToken = s.Register(bob, "An0therPassw0rd!"+suffix)
	})

	s.Run("Step 1: Alice creates a project with both members", func() {
		status := s.DoJSON(http.MethodPost, "/api/projects", aliceToken, projectPayload{
			Name:        "launch-" + suffix,
			Description: "Release preparation",
			Members: []memberPayload{
				{Name: alice, Task: "write docs"},
				{Name: bob, Task: "review"},
			},
		}, &project)
		s.Require().Equal(http.StatusCreated, status)
		s.Require().Equal(alice, project.Owner)
	})

	s.Run("Step 2: Create the project chat room", func() {
		status := s.DoJSON(http.MethodPost, "/api/rooms", aliceToken, roomPayload{
			ID:          "room-" + suffix,
			ProjectName: project.Name,
			Members:     []string{alice, bob},
		}, &room)
		s.Require().Equal(http.StatusCreated, status)
	})

	s.Run("Step 3: Message fan-out reaches both subscribers", func() {
		aliceConn := s.DialRoom(room.ID, aliceToken)
		defer aliceConn.Close()
		bobConn := s.DialRoom(room.ID, bobToken)
		defer bobConn.Close()

		// Give the registry a beat to record both subscriptions.
		time.Sleep(200 * time.Millisecond)

		content := "kickoff at noon " + suffix
		s.Require().NoError(aliceConn.WriteJSON(map[string]string{"content": content}))

		for name, conn := range map[string]interface {
			ReadMessage() (int, []byte, error)
			SetReadDeadline(time.Time) error
		}{"alice": aliceConn, "bob": bobConn} {
			s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
			_, payload, err := conn.ReadMessage()
			s.Require().NoError(err, "subscriber %s never received the broadcast", name)

			var msg struct {
				Author  string `json:"author"`
				Content string `json:"content"`
			}
			s.Require().NoError(json.Unmarshal(payload, &msg))
			s.Require().Equal(alice, msg.Author)
			s.Require().Equal(content, msg.Content)
		}
	})

	s.Run("Step 4: Project update merges new member into the room", func() {
		carol := "carol" + suffix
		project.Members = append(project.Members, memberPayload{Name: carol, Task: "qa"})

		var updated projectPayload
		status := s.DoJSON(http.MethodPut, fmt.Sprintf("/api/projects/%s", project.ID),
			aliceToken, project, &updated)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Equal(project.Version+1, updated.Version)

		var rooms []roomPayload
		status = s.DoJSON(http.MethodGet, "/api/rooms?member="+carol, aliceToken, nil, &rooms)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Len(rooms, 1)
		s.Require().Contains(rooms[0].Members, carol)
	})

	s.Run("Step 5: Non-owner update is rejected", func() {
		status := s.DoJSON(http.MethodPut, fmt.Sprintf("/api/projects/%s", project.ID),
			bobToken, project, nil)
		s.Require().Equal(http.StatusForbidden, status)
	})
}
