package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

// BaseHttpSuite carries the shared plumbing for end-to-end scenarios:
// configuration, an HTTP client, and helpers for authenticated calls.
// Scenarios are skipped unless SERVER_ADDR points at a running instance.
type BaseHttpSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

func (s *BaseHttpSuite) SetupSuite() {
	cfg, err := LoadConfig()
	s.Require().NoError(err)

	if cfg.ServerAddr == "" {
		s.T().Skip("SERVER_ADDR not set, skipping end-to-end scenario")
	}

	s.Config = cfg
	s.client = &http.Client{Timeout: 10 * time.Second}
}

// DoJSON sends a JSON request and decodes the response body into out.
func (s *BaseHttpSuite) DoJSON(method, path, token string, body, out any) int {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		if s.Config.DebugJSON {
			s.logf(">>> %s %s %s", method, path, payload)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", s.Config.ServerAddr, path), reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if s.Config.DebugJSON {
		s.logf("<<< %d %s", resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 && resp.StatusCode < http.StatusBadRequest {
		s.Require().NoError(json.Unmarshal(raw, out))
	}
	return resp.StatusCode
}

// Register creates a user and returns its bearer token.
func (s *BaseHttpSuite) Register(username, password string) string {
	var resp struct {
		Token string `json:"token"`
	}
	status := s.DoJSON(http.MethodPost, "/api/register", "",
		map[string]string{"username": username, "password": password}, &resp)
	s.Require().Equal(http.StatusCreated, status)
	s.Require().NotEmpty(resp.Token)
	return resp.Token
}

// DialRoom opens a websocket subscription on a room.
func (s *BaseHttpSuite) DialRoom(roomID, token string) *websocket.Conn {
	endpoint := url.URL{
		Scheme:   "ws",
		Host:     s.Config.ServerAddr,
		Path:     "/ws",
		RawQuery: url.Values{"room": {roomID}, "token": {token}}.Encode(),
	}
	conn, _, err := websocket.DefaultDialer.Dial(endpoint.String(), nil)
	s.Require().NoError(err)
	return conn
}

func (s *BaseHttpSuite) logf(format string, args ...any) {
	if s.Config.Colours {
		color.Gray.Printf(format+"\n", args...)
	} else {
		s.T().Logf(format, args...)
	}
}
