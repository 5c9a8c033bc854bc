//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=../mocks/mock_project_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"teamboard/domain"
	"teamboard/errors"

	"github.com/dgraph-io/badger/v4"
)

type IProjectRepository interface {
	SaveProject(project domain.Project) (domain.Project, error)
	FindProjectByID(id domain.ProjectID) (domain.Project, error)
	FindProjectsByMember(username string) ([]domain.Project, error)
}

type ProjectRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewProjectRepository(db *badger.DB, log *slog.Logger) ProjectRepository {
	return ProjectRepository{db: db, log: log}
}

const projectPrefix = "project:"

func projectKey(id domain.ProjectID) []byte {
	return []byte(fmt.Sprintf("%s%s", projectPrefix, id))
}

// SaveProject persists a project under optimistic concurrency control.
// The caller's Version must match the stored one (or be zero for a new
// record); on success the stored Version is incremented and the saved copy
// returned. A mismatch yields ErrVersionConflict and writes nothing.
func (r ProjectRepository) SaveProject(project domain.Project) (domain.Project, error) {
	if project.ID == "" {
		return domain.Project{}, fmt.Errorf("project id is required")
	}
	saved := project
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(projectKey(project.ID))
		switch {
		case err == badger.ErrKeyNotFound:
			if project.Version != 0 {
				// Writer believes a version exists that we no longer hold.
				return errors.ErrVersionConflict
			}
		case err != nil:
			return err
		default:
			var stored domain.Project
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &stored)
			}); err != nil {
				return err
			}
			if stored.Version != project.Version {
				return errors.ErrVersionConflict
			}
		}

		saved.Version = project.Version + 1
		bytes, err := json.Marshal(saved)
		if err != nil {
			return err
		}
		return txn.Set(projectKey(project.ID), bytes)
	})
	if err != nil {
		return domain.Project{}, err
	}
	return saved, nil
}

func (r ProjectRepository) FindProjectByID(id domain.ProjectID) (domain.Project, error) {
	var project domain.Project
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(projectKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &project)
		})
	})
	if err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// FindProjectsByMember scans every project and keeps those where the given
// username appears in the member list. A prefix scan is fine at board scale;
// there is no secondary index on membership.
func (r ProjectRepository) FindProjectsByMember(username string) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(projectPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var project domain.Project
				if err := json.Unmarshal(val, &project); err != nil {
					return err
				}
				if project.HasMember(username) {
					projects = append(projects, project)
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
	return projects, nil
}
