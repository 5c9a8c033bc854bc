package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttachmentStore_StoreAndOpen(t *testing.T) {
	req := require.New(t)
	store, err := NewAttachmentStore(t.TempDir(), 1024)
	req.NoError(err)

	content := "minutes of the sprint review"
	attachment, err := store.Store("../notes.txt", strings.NewReader(content))
	req.NoError(err)

	// Path traversal in the declared name is neutralized.
	req.Equal("notes.txt", attachment.Filename)
	req.Equal(int64(len(content)), attachment.Size)
	req.Contains(attachment.MimeType, "text/plain")

	reader, err := store.Open(attachment.ID)
	req.NoError(err)
	defer reader.Close()

	read, err := io.ReadAll(reader)
	req.NoError(err)
	req.Equal(content, string(read))
}

func TestAttachmentStore_RejectsOversized(t *testing.T) {
	req := require.New(t)
	store, err := NewAttachmentStore(t.TempDir(), 8)
	req.NoError(err)

	_, err = store.Store("big.bin", strings.NewReader("way more than eight bytes"))
	req.Error(err)
	req.Contains(err.Error(), "exceeds")
}
