//go:generate go run go.uber.org/mock/mockgen -source=message_index.go -destination=../mocks/mock_message_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"
	"time"

	"teamboard/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type IMessageIndex interface {
	Index(message domain.Message) error
	Search(ctx context.Context, roomID domain.RoomID, terms string, limit int) ([]IndexedMessage, error)
}

// IndexedMessage is the projection of a chat message stored in the search
// index. It carries enough to render a search hit without touching the
// in-memory log.
type IndexedMessage struct {
	ID      uuid.UUID
	Room    domain.RoomID
	Author  string
	Content string
	At      time.Time
}

type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) MessageIndex {
	return MessageIndex{writer: writer, log: log}
}

// Index upserts one message document. Content is analyzed for full-text
// matching; room and author are exact-match keywords.
func (m MessageIndex) Index(message domain.Message) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewTextField("content", message.Content).StoreValue()).
		AddField(bluge.NewKeywordField("room", string(message.Room)).StoreValue()).
		AddField(bluge.NewKeywordField("author", message.SenderID).StoreValue()).
		AddField(bluge.NewStoredOnlyField("at", []byte(message.CreatedAt.Format(time.RFC3339Nano))))

	return m.writer.Update(doc.ID(), doc)
}

// Search runs a full-text query over one room's messages, best match first.
func (m MessageIndex) Search(ctx context.Context, roomID domain.RoomID, terms string, limit int) ([]IndexedMessage, error) {
	reader, err := m.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			m.log.Warn("failed to close index reader", "err", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("content")).
		AddMust(bluge.NewTermQuery(string(roomID)).SetField("room"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var results []IndexedMessage
	match, err := iterator.Next()
	for err == nil && match != nil {
		var hit IndexedMessage
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID, _ = uuid.Parse(string(value))
			case "room":
				hit.Room = domain.RoomID(value)
			case "author":
				hit.Author = string(value)
			case "content":
				hit.Content = string(value)
			case "at":
				hit.At, _ = time.Parse(time.RFC3339Nano, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		results = append(results, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}
