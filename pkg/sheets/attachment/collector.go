package attachment

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"registration-sheets-be/internal/pkg/logger"
)

// Collector locates on-disk attachment files for the resolved phase
// registrations. Storage convention: one directory per registration id under
// the root, holding that registration's uploads.
type Collector struct {
	rootDir string
	logger  logger.ILogger
}

func NewCollector(rootDir string, log logger.ILogger) *Collector {
	return &Collector{
		rootDir: rootDir,
		logger:  log,
	}
}

// Collect reads every PDF under the governing registrations' directories,
// preserving phase iteration order and deduplicating by absolute path. A
// registration without a directory contributes nothing; an unreadable file
// is skipped with a warning. Returns the raw file contents.
func (c *Collector) Collect(governingIds []int64) [][]byte {
	var buffers [][]byte
	seen := make(map[string]bool)

	for _, id := range governingIds {
		dir := filepath.Join(c.rootDir, strconv.FormatInt(id, 10))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				c.logger.Warn("attachment", "cannot list attachment directory", map[string]interface{}{
					"dir":   dir,
					"error": err.Error(),
				})
			}
			continue
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)

		for _, name := range names {
			path := filepath.Join(dir, name)
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true

			data, err := os.ReadFile(path)
			if err != nil {
				c.logger.Warn("attachment", "cannot read attachment file", map[string]interface{}{
					"path":  path,
					"error": err.Error(),
				})
				continue
			}
			buffers = append(buffers, data)
		}
	}

	return buffers
}
