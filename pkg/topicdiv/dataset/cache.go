package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

// DefaultExtension is the file extension merged from the raw directory.
const DefaultExtension = ".csv"

// Options configures a Cache.
type Options struct {
	// Extension selects the raw files to merge. Defaults to ".csv".
	Extension string
	// Logger receives progress notices. Defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Cache memoizes a merged dataset to disk.
type Cache struct {
	ext    string
	logger zerolog.Logger
}

// New creates a Cache with the given options.
func New(opts Options) *Cache {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Cache{ext: ext, logger: logger.With().Str("component", "dataset").Logger()}
}

// LoadOrMerge merges rawDir into processedPath using default options.
func LoadOrMerge(rawDir, processedPath string) (*Dataset, error) {
	return New(Options{}).LoadOrMerge(rawDir, processedPath)
}

// LoadOrMerge returns the dataset cached at processedPath. When no cache file
// exists it concatenates every matching file directly under rawDir, persists
// the result to processedPath and returns it.
//
// The cache is never checked against the raw directory; removing the
// processed file is the only way to force a rebuild.
func (c *Cache) LoadOrMerge(rawDir, processedPath string) (*Dataset, error) {
	if _, err := os.Stat(processedPath); err == nil {
		c.logger.Info().Str("path", processedPath).Msg("loading merged dataset")
		ds, err := ReadCSV(processedPath)
		if err != nil {
			return nil, fmt.Errorf("load cached dataset: %w", err)
		}
		return ds, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", processedPath, err)
	}

	c.logger.Info().Str("raw_dir", rawDir).Str("extension", c.ext).Msg("merging raw files")
	files, err := c.discover(rawDir)
	if err != nil {
		return nil, err
	}

	fragments := make([]*Dataset, 0, len(files))
	for _, path := range files {
		frag, err := ReadCSV(path)
		if err != nil {
			return nil, err
		}
		c.logger.Debug().Str("file", path).Int("rows", frag.Len()).Msg("read fragment")
		fragments = append(fragments, frag)
	}
	merged := concat(fragments)

	if dir := filepath.Dir(processedPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := WriteCSV(processedPath, merged); err != nil {
		return nil, fmt.Errorf("save merged dataset: %w", err)
	}
	c.logger.Info().
		Str("path", processedPath).
		Int("files", len(files)).
		Int("rows", merged.Len()).
		Msg("saved merged dataset")

	return merged, nil
}

// discover lists matching regular files directly under dir in lexical order.
func (c *Cache) discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no %s files found in %s: %w", c.ext, dir, internalerr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read raw dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), c.ext) {
			continue
		}
		if !e.Type().IsRegular() && e.Type()&fs.ModeSymlink == 0 {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %s: %w", c.ext, dir, internalerr.ErrNotFound)
	}
	return files, nil
}
