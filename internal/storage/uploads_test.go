package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("resume", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["resume"][0]
}

func newTestStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "uploads"), maxBytes)
	require.NoError(t, err)
	return store
}

func TestSaveStoresUnderGeneratedName(t *testing.T) {
	store := newTestStore(t, 1<<20)

	name, err := store.Save(fileHeader(t, "../../etc/cv.pdf", pdfBytes))
	require.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(name))
	assert.NotContains(t, name, "cv")

	path, err := store.Path(name)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, got)

	other, err := store.Save(fileHeader(t, "cv.pdf", pdfBytes))
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

func TestSaveUsesSniffedTypeNotDeclaredName(t *testing.T) {
	store := newTestStore(t, 1<<20)

	name, err := store.Save(fileHeader(t, "photo.pdf", pngBytes))
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(name))
}

func TestSaveRejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t, 1<<20)

	_, err := store.Save(fileHeader(t, "notes.pdf", []byte("just some plain text")))
	assert.True(t, errors.Is(err, ErrUnsupportedType))

	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveRejectsOversize(t *testing.T) {
	store := newTestStore(t, 16)

	_, err := store.Save(fileHeader(t, "cv.pdf", pdfBytes))
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPathRejectsTraversal(t *testing.T) {
	store := newTestStore(t, 0)

	for _, name := range []string{"", ".", "..", "../secret", "a/b.pdf", `a\b.pdf`} {
		_, err := store.Path(name)
		assert.ErrorIsf(t, err, ErrInvalidName, "name %q", name)
	}

	path, err := store.Path("abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Dir, "abc.pdf"), path)
}

func TestRemoveIgnoresMissing(t *testing.T) {
	store := newTestStore(t, 1<<20)
	name, err := store.Save(fileHeader(t, "cv.pdf", pdfBytes))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name, "never-existed.pdf"))
	_, err = os.Stat(filepath.Join(store.Dir, name))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, store.Remove("../x"), ErrInvalidName)
}

type fakeRefs map[string]struct{}

func (f fakeRefs) ReferencedFiles(context.Context) (map[string]struct{}, error) {
	return f, nil
}

func writeAged(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, pdfBytes, 0o644))
	when := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, when, when))
}

func TestSweepRemovesOnlyOldUnreferencedFiles(t *testing.T) {
	store := newTestStore(t, 1<<20)
	writeAged(t, store.Dir, "kept.pdf", 48*time.Hour)
	writeAged(t, store.Dir, "orphan.pdf", 48*time.Hour)
	writeAged(t, store.Dir, "fresh.pdf", time.Minute)
	require.NoError(t, os.Mkdir(filepath.Join(store.Dir, "sub"), 0o755))

	sweeper := NewSweeper(store, fakeRefs{"kept.pdf": {}}, 24*time.Hour, log.New(io.Discard, "", 0))
	removed, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"kept.pdf", "fresh.pdf", "sub"}, names)
}

func TestSweeperStartRejectsBadSpec(t *testing.T) {
	sweeper := NewSweeper(newTestStore(t, 0), fakeRefs{}, time.Hour, log.New(io.Discard, "", 0))
	assert.Error(t, sweeper.Start("not a cron spec"))
	sweeper.Stop()

	require.NoError(t, sweeper.Start("@every 1h"))
	sweeper.Stop()
}
