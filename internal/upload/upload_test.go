package upload

import (
	"bytes"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placez/placez-api/internal/domain"
)

// fakeFile adapts a bytes.Reader to multipart.File.
type fakeFile struct {
	*bytes.Reader
}

func (f *fakeFile) Close() error { return nil }

func newHeader(filename, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: filename,
		Header:   h,
		Size:     size,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir(), 1<<20, slog.Default())
	require.NoError(t, err)
	return store
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("stores with randomized name", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t)
		content := []byte("fake png bytes")
		file := &fakeFile{bytes.NewReader(content)}

		path, err := store.Save(file, newHeader("avatar.png", "image/png", int64(len(content))))
		require.NoError(t, err)

		assert.Equal(t, store.Dir(), filepath.Dir(path))
		assert.NotContains(t, path, "avatar")
		assert.True(t, strings.HasSuffix(path, ".png"))

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, written)
	})

	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int64
	}{
		{name: "empty filename", filename: "", contentType: "image/png", size: 10},
		{name: "traversal filename", filename: "../../etc/passwd", contentType: "image/png", size: 10},
		{name: "disallowed content type", filename: "a.pdf", contentType: "application/pdf", size: 10},
		{name: "oversized file", filename: "big.png", contentType: "image/png", size: 2 << 20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newTestStore(t)
			file := &fakeFile{bytes.NewReader([]byte("x"))}

			path, err := store.Save(file, newHeader(tt.filename, tt.contentType, tt.size))
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, path)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	content := []byte("bytes")
	file := &fakeFile{bytes.NewReader(content)}

	path, err := store.Save(file, newHeader("a.jpg", "image/jpeg", int64(len(content))))
	require.NoError(t, err)

	store.Remove(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing a missing or empty path must not panic or log an error.
	store.Remove(path)
	store.Remove("")
}
