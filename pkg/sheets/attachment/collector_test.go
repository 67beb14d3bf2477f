package attachment

import (
	"os"
	"path/filepath"
	"testing"

	"registration-sheets-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "401"), "b-projeto.pdf", "projeto")
	writeFile(t, filepath.Join(root, "401"), "a-rg.PDF", "rg")
	writeFile(t, filepath.Join(root, "401"), "notes.txt", "ignored")
	writeFile(t, filepath.Join(root, "501"), "portfolio.pdf", "portfolio")

	collector := NewCollector(root, logger.NewNopLogger())
	buffers := collector.Collect([]int64{401, 501})

	// Names sorted within a registration, registrations in phase order,
	// extension match case-insensitive, non-PDF skipped.
	assert.Equal(t, [][]byte{
		[]byte("rg"),
		[]byte("projeto"),
		[]byte("portfolio"),
	}, buffers)
}

func TestCollectMissingDirectory(t *testing.T) {
	collector := NewCollector(t.TempDir(), logger.NewNopLogger())
	buffers := collector.Collect([]int64{999})
	assert.Empty(t, buffers)
}

func TestCollectDeduplicatesRepeatedGoverningId(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "401"), "projeto.pdf", "projeto")

	collector := NewCollector(root, logger.NewNopLogger())

	// The same registration can govern several phases; its files must only
	// be merged once.
	buffers := collector.Collect([]int64{401, 401})
	assert.Len(t, buffers, 1)
}
