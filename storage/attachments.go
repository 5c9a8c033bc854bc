package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type Attachment struct {
	ID       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	MimeType string    `json:"mime_type"`
	Size     int64     `json:"size"`
	Path     string    `json:"-"`
	StoredAt time.Time `json:"stored_at"`
}

type IAttachmentStore interface {
	Store(filename string, content io.Reader) (Attachment, error)
	Open(id uuid.UUID) (io.ReadCloser, error)
}

// AttachmentStore keeps uploaded files on local disk under a flat directory,
// one file per attachment keyed by its generated id. The declared filename is
// metadata only, the content type comes from sniffing the bytes.
type AttachmentStore struct {
	root    string
	maxSize int64
}

func NewAttachmentStore(root string, maxSize int64) (*AttachmentStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to prepare attachment dir %s: %w", root, err)
	}
	return &AttachmentStore{root: root, maxSize: maxSize}, nil
}

func (s *AttachmentStore) Store(filename string, content io.Reader) (Attachment, error) {
	id := uuid.New()
	path := filepath.Join(s.root, id.String())

	dst, err := os.Create(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, io.LimitReader(content, s.maxSize+1))
	if err != nil {
		_ = os.Remove(path)
		return Attachment{}, fmt.Errorf("failed to write attachment: %w", err)
	}
	if size > s.maxSize {
		_ = os.Remove(path)
		return Attachment{}, fmt.Errorf("attachment exceeds %d bytes", s.maxSize)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		_ = os.Remove(path)
		return Attachment{}, fmt.Errorf("failed to detect mime type: %w", err)
	}

	return Attachment{
		ID:       id,
		Filename: filepath.Base(filename),
		MimeType: mtype.String(),
		Size:     size,
		Path:     path,
		StoredAt: time.Now().UTC(),
	}, nil
}

func (s *AttachmentStore) Open(id uuid.UUID) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, id.String()))
}
