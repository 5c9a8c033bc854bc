//go:generate go run go.uber.org/mock/mockgen -source=chatroom.go -destination=../mocks/mock_chatroom_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"teamboard/domain"
	"teamboard/errors"

	"github.com/dgraph-io/badger/v4"
)

type IChatRoomRepository interface {
	SaveChatRoom(room domain.ChatRoom) (domain.ChatRoom, error)
	FindChatRoomByProjectName(name string) (domain.ChatRoom, error)
	FindChatRoomsByMember(username string) ([]domain.ChatRoom, error)
}

type ChatRoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewChatRoomRepository(db *badger.DB, log *slog.Logger) ChatRoomRepository {
	return ChatRoomRepository{db: db, log: log}
}

const (
	roomPrefix = "room:"
	// Secondary index: project name -> room id. The relation is by value,
	// a project rename is not propagated here.
	roomNameIdxPrefix = "idx:roomname:"
)

func roomKey(id domain.RoomID) []byte {
	return []byte(fmt.Sprintf("%s%s", roomPrefix, id))
}

func roomNameIdxKey(projectName string) []byte {
	return []byte(fmt.Sprintf("%s%s", roomNameIdxPrefix, projectName))
}

// SaveChatRoom persists a room with the same optimistic version discipline as
// projects, and keeps the name index in sync. Member list is deduplicated and
// sorted before writing so membership is a set on disk.
func (r ChatRoomRepository) SaveChatRoom(room domain.ChatRoom) (domain.ChatRoom, error) {
	if room.ID == "" {
		return domain.ChatRoom{}, fmt.Errorf("room id is required")
	}
	saved := room
	saved.MergeMembers(nil)
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(roomKey(room.ID))
		switch {
		case err == badger.ErrKeyNotFound:
			if room.Version != 0 {
				return errors.ErrVersionConflict
			}
		case err != nil:
			return err
		default:
			var stored domain.ChatRoom
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &stored)
			}); err != nil {
				return err
			}
			if stored.Version != room.Version {
				return errors.ErrVersionConflict
			}
		}

		saved.Version = room.Version + 1
		bytes, err := json.Marshal(saved)
		if err != nil {
			return err
		}
		if err := txn.Set(roomKey(room.ID), bytes); err != nil {
			return err
		}
		return txn.Set(roomNameIdxKey(saved.ProjectName), []byte(saved.ID))
	})
	if err != nil {
		return domain.ChatRoom{}, err
	}
	return saved, nil
}

func (r ChatRoomRepository) FindChatRoomByProjectName(name string) (domain.ChatRoom, error) {
	var room domain.ChatRoom
	err := r.db.View(func(txn *badger.Txn) error {
		idxItem, err := txn.Get(roomNameIdxKey(name))
		if err == badger.ErrKeyNotFound {
			return errors.ErrNotFound
		}
		if err != nil {
			return err
		}
		var roomID []byte
		if err := idxItem.Value(func(val []byte) error {
			roomID = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}

		item, err := txn.Get(roomKey(domain.RoomID(roomID)))
		if err == badger.ErrKeyNotFound {
			// Dangling index entry, surface as absence.
			return errors.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &room)
		})
	})
	if err != nil {
		return domain.ChatRoom{}, err
	}
	return room, nil
}

func (r ChatRoomRepository) FindChatRoomsByMember(username string) ([]domain.ChatRoom, error) {
	var rooms []domain.ChatRoom
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(roomPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var room domain.ChatRoom
				if err := json.Unmarshal(val, &room); err != nil {
					return err
				}
				if room.HasMember(username) {
					rooms = append(rooms, room)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
