// Package kvstore provides the key-value stores goals persist into.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/goals/internal/domain"
)

// FileName is the file backend's data file inside the data directory.
const FileName = "store.json"

// corruptSuffix names the copy kept of a data file that would not parse.
const corruptSuffix = ".corrupt"

// FileStore implements domain.KVStore as one JSON object in a file.
// Every read takes a shared flock and every write an exclusive one,
// so several goals processes can share the file.
type FileStore struct {
	logger   domain.Logger
	path     string
	lockPath string
}

// Ensure FileStore implements domain.KVStore.
var _ domain.KVStore = (*FileStore)(nil)

// NewFileStore creates a FileStore for the given file path.
// The file does not need to exist; it will be created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		logger:   domain.NopLogger{},
		path:     path,
		lockPath: path + ".lock",
	}
}

// WithLogger sets the logger that receives warnings about unreadable data.
func (s *FileStore) WithLogger(logger domain.Logger) *FileStore {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := s.withLock(func(data map[string]string) error {
		value, ok = data[key]
		return nil
	})
	return value, ok, err
}

// Set stores value under key.
func (s *FileStore) Set(key, value string) error {
	return s.withLockWrite(func(data map[string]string) error {
		data[key] = value
		return nil
	})
}

// Close is a no-op; locks are held only for the duration of a call.
func (s *FileStore) Close() error {
	return nil
}

// withLock executes fn with a shared (read) lock.
func (s *FileStore) withLock(fn func(map[string]string) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, _, err := s.read()
	if err != nil {
		return err
	}
	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *FileStore) withLockWrite(fn func(map[string]string) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, corrupt, err := s.read()
	if err != nil {
		return err
	}
	if corrupt != nil {
		s.keepCorrupt(corrupt)
	}
	if err := fn(data); err != nil {
		return err
	}
	return s.write(data)
}

func (s *FileStore) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return lock, nil
}

func (s *FileStore) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read returns the stored object. A missing or empty file is an empty store.
// Content that does not parse is also read as an empty store and returned
// as corrupt, so the next write can keep a copy before replacing it.
func (s *FileStore) read() (map[string]string, []byte, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil, nil
		}
		return nil, nil, fmt.Errorf("read store file: %w", err)
	}
	if len(content) == 0 {
		return map[string]string{}, nil, nil
	}

	var data map[string]string
	if err := json.Unmarshal(content, &data); err != nil {
		s.logger.Warn("", "store", fmt.Sprintf("ignoring unreadable store file %s: %v", s.path, err))
		return map[string]string{}, content, nil
	}
	if data == nil {
		data = map[string]string{}
	}
	return data, nil, nil
}

// keepCorrupt copies unreadable content next to the data file.
// Failure is logged; the write goes ahead either way.
func (s *FileStore) keepCorrupt(content []byte) {
	backup := s.path + corruptSuffix
	if err := os.WriteFile(backup, content, 0o600); err != nil {
		s.logger.Warn("", "store", fmt.Sprintf("keep unreadable store file: %v", err))
		return
	}
	s.logger.Warn("", "store", "unreadable store file saved to "+backup)
}

func (s *FileStore) write(data map[string]string) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
