package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"

	"crtracker/internal/logging"
)

// ErrStoreMissing reports that the catalog file does not exist. Callers
// decide whether that is fatal (incremental sync) or expected (first run).
var ErrStoreMissing = errors.New("catalog file does not exist")

// Snapshot is the in-memory form of the catalog: the column order of the
// backing file and every row, valid or not.
type Snapshot struct {
	Fields   []string
	Episodes []*Episode
}

// NewSnapshot returns an empty snapshot with the canonical column set.
func NewSnapshot() *Snapshot {
	return &Snapshot{Fields: CanonicalFields()}
}

// Store reads and writes the CSV catalog under an exclusive file lock.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewStore creates a store for the catalog at path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Path returns the catalog file path.
func (s *Store) Path() string { return s.path }

// Acquire takes the exclusive catalog lock, failing immediately if another
// process holds it.
func (s *Store) Acquire() error {
	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("catalog is locked by another process (lock file %s)", s.lock.Path())
	}
	return nil
}

// Release drops the catalog lock and removes the lock file.
func (s *Store) Release() {
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release catalog lock", logging.Error(err))
		return
	}
	if err := os.Remove(s.lock.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("failed to remove catalog lock file", logging.Error(err))
	}
}

// Load reads the entire catalog. A missing file returns ErrStoreMissing;
// rows that cannot be matched against are kept so no data is lost on save.
func (s *Store) Load() (*Snapshot, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreMissing, s.path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	snap := &Snapshot{Fields: mergeFields(header)}
	invalid := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		ep := &Episode{}
		for i, value := range record {
			if i >= len(header) {
				break
			}
			ep.setField(header[i], value)
		}
		if !ep.Valid() {
			invalid++
		}
		snap.Episodes = append(snap.Episodes, ep)
	}
	if invalid > 0 {
		s.logger.Warn("catalog contains rows without id or title; they are preserved but never matched",
			logging.Int("rows", invalid))
	}
	s.logger.Debug("catalog loaded", logging.Int("episodes", len(snap.Episodes)))
	return snap, nil
}

// Save sorts the snapshot by airdate and writes it atomically: the new
// content lands in a temp file first and replaces the catalog via rename.
func (s *Store) Save(snap *Snapshot) error {
	SortEpisodes(snap.Episodes)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".episodes-*.csv")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	writer := csv.NewWriter(tmp)
	if err := writer.Write(snap.Fields); err != nil {
		tmp.Close()
		return fmt.Errorf("write catalog header: %w", err)
	}
	record := make([]string, len(snap.Fields))
	for _, ep := range snap.Episodes {
		for i, name := range snap.Fields {
			record[i] = ep.field(name)
		}
		if err := writer.Write(record); err != nil {
			tmp.Close()
			return fmt.Errorf("write catalog row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush catalog: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	s.logger.Debug("catalog saved", logging.Int("episodes", len(snap.Episodes)))
	return nil
}

// SortEpisodes orders episodes by airdate, oldest first. Rows without a
// concrete date sort to the end, preserving their relative order.
func SortEpisodes(episodes []*Episode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		return sortKey(episodes[i].Airdate) < sortKey(episodes[j].Airdate)
	})
}

func sortKey(airdate string) string {
	trimmed := strings.TrimSpace(airdate)
	if trimmed == "" || strings.EqualFold(trimmed, "forthcoming") {
		return "9999-99-99"
	}
	return trimmed
}

// mergeFields keeps the canonical column order and appends any columns the
// existing file carries beyond the schema.
func mergeFields(header []string) []string {
	fields := CanonicalFields()
	known := make(map[string]bool, len(fields))
	for _, name := range fields {
		known[name] = true
	}
	for _, name := range header {
		if !known[name] {
			fields = append(fields, name)
			known[name] = true
		}
	}
	return fields
}
