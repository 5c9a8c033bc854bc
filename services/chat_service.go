//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"time"

	"teamboard/contract"
	"teamboard/domain"
	"teamboard/domain/search"
	"teamboard/repositories"
)

// IChatEngine is the slice of the orchestrator the chat service relies on.
type IChatEngine interface {
	PostMessage(ctx context.Context, cmd domain.PostMessageCommand) error
	History(roomID domain.RoomID) []domain.Message
	RegisterParticipant(pID string, roomID domain.RoomID, sink contract.EventSink)
	UnregisterParticipant(pID string)
}

type IChatService interface {
	PostMessage(ctx context.Context, cmd domain.PostMessageCommand) error
	History(roomID domain.RoomID) []domain.Message
	JoinRoom(userID string, roomID domain.RoomID, sink contract.EventSink)
	LeaveRoom(userID string)
	SearchMessages(ctx context.Context, roomID domain.RoomID, query *search.Query) ([]repositories.IndexedMessage, error)
}

type ChatService struct {
	engine IChatEngine
	index  repositories.IMessageIndex
}

func NewChatService(engine IChatEngine, index repositories.IMessageIndex) *ChatService {
	return &ChatService{engine: engine, index: index}
}

// PostMessage hands the submission to the engine. It never reports delivery
// problems back to the sender: once accepted, fan-out is best-effort.
func (s *ChatService) PostMessage(ctx context.Context, cmd domain.PostMessageCommand) error {
	if cmd.ReceivedAt.IsZero() {
		cmd.ReceivedAt = time.Now().UTC()
	}
	return s.engine.PostMessage(ctx, cmd)
}

// History returns the full ordered log of a room; empty for an unknown room.
func (s *ChatService) History(roomID domain.RoomID) []domain.Message {
	return s.engine.History(roomID)
}

func (s *ChatService) JoinRoom(userID string, roomID domain.RoomID, sink contract.EventSink) {
	s.engine.RegisterParticipant(userID, roomID, sink)
}

// LeaveRoom drops the participant from every room, the only teardown signal
// a disconnecting connection gives us.
func (s *ChatService) LeaveRoom(userID string) {
	s.engine.UnregisterParticipant(userID)
}

func (s *ChatService) SearchMessages(ctx context.Context, roomID domain.RoomID, query *search.Query) ([]repositories.IndexedMessage, error) {
	return s.index.Search(ctx, roomID, query.Terms, query.Limit)
}
