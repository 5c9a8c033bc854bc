package repositories

import (
	"log/slog"
	"testing"

	"teamboard/domain"
	"teamboard/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestProjectRepository_SaveProject_VersionDiscipline(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewProjectRepository(db, slog.Default())

	project := domain.Project{
		ID:    "p-1",
		Name:  "apollo",
		Owner: "alice",
		Members: []domain.Member{
			{Name: "alice", Task: "write docs"},
		},
	}

	// First save: version 0 -> 1.
	saved, err := repo.SaveProject(project)
	req.NoError(err)
	req.Equal(uint64(1), saved.Version)

	// Saving again with the stale version 0 conflicts.
	_, err = repo.SaveProject(project)
	req.ErrorIs(err, errors.ErrVersionConflict)

	// Saving with the current version succeeds and bumps again.
	saved.Description = "updated"
	saved2, err := repo.SaveProject(saved)
	req.NoError(err)
	req.Equal(uint64(2), saved2.Version)

	// A non-zero version on a missing record is also a conflict.
	_, err = repo.SaveProject(domain.Project{ID: "ghost", Name: "x", Version: 5})
	req.ErrorIs(err, errors.ErrVersionConflict)
}

func TestProjectRepository_SaveProject_ConflictWritesNothing(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewProjectRepository(db, slog.Default())

	saved, err := repo.SaveProject(domain.Project{ID: "p-1", Name: "apollo", Owner: "alice"})
	req.NoError(err)

	// Conflicting write must leave the stored document untouched.
	_, err = repo.SaveProject(domain.Project{ID: "p-1", Name: "hijacked", Version: 99})
	req.ErrorIs(err, errors.ErrVersionConflict)

	stored, err := repo.FindProjectByID("p-1")
	req.NoError(err)
	req.Equal(saved, stored)
}

func TestProjectRepository_FindProjectByID_NotFound(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewProjectRepository(db, slog.Default())

	_, err := repo.FindProjectByID("ghost")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestProjectRepository_FindProjectsByMember(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repo := NewProjectRepository(db, slog.Default())

	projects := []domain.Project{
		{ID: "p-1", Name: "apollo", Owner: "alice", Members: []domain.Member{
			{Name: "alice", Task: "write docs"}, {Name: "bob", Task: "review"}}},
		{ID: "p-2", Name: "gemini", Owner: "bob", Members: []domain.Member{
			{Name: "bob", Task: "deploy"}}},
		{ID: "p-3", Name: "mercury", Owner: "carol", Members: []domain.Member{
			{Name: "carol", Task: "design"}}},
	}
	for _, p := range projects {
		_, err := repo.SaveProject(p)
		req.NoError(err)
	}

	found, err := repo.FindProjectsByMember("bob")
	req.NoError(err)
	req.Len(found, 2)

	found, err = repo.FindProjectsByMember("nobody")
	req.NoError(err)
	req.Empty(found)
}
