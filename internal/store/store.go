package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/apigraveyard/apigraveyard/internal/types"
)

// Version is the persisted schema version.
const Version = "1.0.0"

const (
	fileName     = ".apigraveyard.json"
	backupSuffix = ".bak"
)

// Store owns the on-disk database. Every mutating operation reads the
// whole document, changes it in memory and writes it back atomically.
type Store struct {
	path string
	now  func() time.Time
}

// Open returns a Store over the default database file in the user's home
// directory, creating an empty database if none exists yet.
func Open() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return OpenAt(filepath.Join(home, fileName))
}

// OpenAt is Open with an explicit file location.
func OpenAt(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.save(s.fresh()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) backupPath() string { return s.path + backupSuffix }

func (s *Store) fresh() types.Database {
	now := s.now().UTC()
	return types.Database{
		Version:    Version,
		CreatedAt:  now,
		UpdatedAt:  now,
		Projects:   []types.Project{},
		BannedKeys: []string{},
	}
}

// load reads the database, falling back to the backup and then to a
// fresh empty document when the primary copy is unusable.
func (s *Store) load() types.Database {
	if db, err := readDatabase(s.path); err == nil {
		return db
	}
	if db, err := readDatabase(s.backupPath()); err == nil {
		return db
	}
	return s.fresh()
}

func readDatabase(path string) (types.Database, error) {
	var db types.Database
	b, err := os.ReadFile(path)
	if err != nil {
		return db, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return db, err
	}
	if db.Version == "" {
		return db, errors.New("missing schema version")
	}
	return db, nil
}

// save writes the database durably: copy the current file to the backup
// (best effort), write a temp file in the same directory, then rename it
// over the target so the file is never seen half-written.
func (s *Store) save(db types.Database) error {
	db.UpdatedAt = s.now().UTC()
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding database: %w", err)
	}

	if prev, err := os.ReadFile(s.path); err == nil {
		_ = os.WriteFile(s.backupPath(), prev, 0o600)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing database: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing database: %w", err)
	}
	return nil
}

// canonicalPath normalizes a directory path for identity comparison.
// Symlink resolution is best effort; comparison is case-insensitive.
func canonicalPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return filepath.Clean(abs)
}

func samePath(a, b string) bool {
	return strings.EqualFold(canonicalPath(a), canonicalPath(b))
}

// projectID derives the stable identifier from the canonical path, so a
// rescan of the same directory regenerates the same ID.
func projectID(canonical string) string {
	return fmt.Sprintf("proj_%016x", xxhash.Sum64String(strings.ToLower(canonical)))
}

// UpsertProject creates or fully replaces the project for path. A
// replacement keeps the existing ID but discards the previous key list
// and scan metadata.
func (s *Store) UpsertProject(path string, totalFiles int, keys []types.KeyMatch, repo *types.RepoInfo) (types.Project, error) {
	canonical := canonicalPath(path)
	stored := make([]types.StoredKey, 0, len(keys))
	for _, m := range keys {
		stored = append(stored, types.NewStoredKey(m))
	}
	p := types.Project{
		ID:         projectID(canonical),
		Name:       filepath.Base(canonical),
		Path:       canonical,
		ScannedAt:  s.now().UTC(),
		TotalFiles: totalFiles,
		Repo:       repo,
		Keys:       stored,
	}

	db := s.load()
	replaced := false
	for i := range db.Projects {
		if samePath(db.Projects[i].Path, canonical) {
			p.ID = db.Projects[i].ID
			db.Projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		db.Projects = append(db.Projects, p)
	}
	if err := s.save(db); err != nil {
		return types.Project{}, err
	}
	return p, nil
}

// Project returns the stored project for path, if any.
func (s *Store) Project(path string) (types.Project, bool) {
	db := s.load()
	for _, p := range db.Projects {
		if samePath(p.Path, path) {
			return p, true
		}
	}
	return types.Project{}, false
}

// Projects returns every stored project.
func (s *Store) Projects() []types.Project {
	return s.load().Projects
}

// DeleteProject removes the project for path and reports whether one
// existed.
func (s *Store) DeleteProject(path string) (bool, error) {
	db := s.load()
	kept := db.Projects[:0]
	removed := false
	for _, p := range db.Projects {
		if samePath(p.Path, path) {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false, nil
	}
	db.Projects = kept
	return true, s.save(db)
}

// MergeResults applies validation results to the named project's keys,
// matched by raw key value. Results for keys the project does not hold
// are ignored. Returns how many keys were updated.
func (s *Store) MergeResults(path string, results []types.KeyResult) (int, error) {
	db := s.load()
	merged := 0
	for i := range db.Projects {
		if !samePath(db.Projects[i].Path, path) {
			continue
		}
		keys := db.Projects[i].Keys
		for _, r := range results {
			for j := range keys {
				if keys[j].FullKey != r.RawValue {
					continue
				}
				status := r.Status
				tested := s.now().UTC()
				keys[j].Status = &status
				keys[j].LastTested = &tested
				keys[j].QuotaInfo = r.Details
				keys[j].LastError = r.Error
				merged++
				break
			}
		}
		break
	}
	if merged == 0 {
		return 0, nil
	}
	return merged, s.save(db)
}

// BanKey adds a raw key value to the banned set. Returns false when the
// key was already banned.
func (s *Store) BanKey(raw string) (bool, error) {
	db := s.load()
	for _, k := range db.BannedKeys {
		if k == raw {
			return false, nil
		}
	}
	db.BannedKeys = append(db.BannedKeys, raw)
	return true, s.save(db)
}

// UnbanKey removes a raw key value from the banned set.
func (s *Store) UnbanKey(raw string) (bool, error) {
	db := s.load()
	kept := db.BannedKeys[:0]
	removed := false
	for _, k := range db.BannedKeys {
		if k == raw {
			removed = true
			continue
		}
		kept = append(kept, k)
	}
	if !removed {
		return false, nil
	}
	db.BannedKeys = kept
	return true, s.save(db)
}

// BannedKeys returns the banned set.
func (s *Store) BannedKeys() []string {
	return s.load().BannedKeys
}

// IsBanned reports membership in the banned set.
func (s *Store) IsBanned(raw string) bool {
	for _, k := range s.load().BannedKeys {
		if k == raw {
			return true
		}
	}
	return false
}

// Stats aggregates the whole database.
type Stats struct {
	TotalProjects int
	TotalKeys     int
	ValidKeys     int
	InvalidKeys   int
	UntestedKeys  int
	BannedKeys    int
	Services      map[types.Service]int
}

// ComputeStats walks every project and tallies key counts by status and
// service.
func (s *Store) ComputeStats() Stats {
	db := s.load()
	st := Stats{
		TotalProjects: len(db.Projects),
		BannedKeys:    len(db.BannedKeys),
		Services:      map[types.Service]int{},
	}
	for _, p := range db.Projects {
		for _, k := range p.Keys {
			st.TotalKeys++
			st.Services[k.Service]++
			switch {
			case k.Status == nil:
				st.UntestedKeys++
			case *k.Status == types.StatusValid:
				st.ValidKeys++
			case *k.Status == types.StatusInvalid:
				st.InvalidKeys++
			default:
				st.UntestedKeys++
			}
		}
	}
	return st
}

// Wipe resets the store to a fresh empty database.
func (s *Store) Wipe() error {
	return s.save(s.fresh())
}
