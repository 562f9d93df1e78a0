// Package memory persists user profiles in a single JSON document.
//
// The document maps user IDs to profiles (preferences plus trip history).
// Every save rewrites the whole document atomically; there is no caching
// and no partial update. A FileStore is safe for use by one process.
package memory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/danieljhkim/travelbuddy/internal/fsops"
)

var (
	// ErrStorage indicates the memory document could not be read, parsed or written.
	ErrStorage = errors.New("storage error")

	// ErrInvalidUser indicates an empty user ID.
	ErrInvalidUser = errors.New("invalid user id")
)

// Store loads and saves user profiles.
type Store interface {
	// Load returns the profile for userID, or a fresh empty profile if none exists.
	Load(userID string) (*UserProfile, error)

	// Save replaces the stored profile for profile.UserID.
	Save(profile *UserProfile) error

	// Users returns the stored user IDs in sorted order.
	Users() ([]string, error)
}

// FileStore implements Store on top of one JSON file.
type FileStore struct {
	fs   fsops.FS
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore backed by the document at path.
// The file is created on first save.
func NewFileStore(fs fsops.FS, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Path returns the location of the backing document.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored profile for userID or a fresh one.
func (s *FileStore) Load(userID string) (*UserProfile, error) {
	if userID == "" {
		return nil, ErrInvalidUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}

	profile, ok := doc[userID]
	if !ok || profile == nil {
		return NewUserProfile(userID), nil
	}
	if profile.UserID == "" {
		profile.UserID = userID
	}
	if profile.Preferences == nil {
		profile.Preferences = map[string]any{}
	}
	if profile.Trips == nil {
		profile.Trips = []Trip{}
	}
	return profile, nil
}

// Save reads the whole document, replaces the entry for profile.UserID and
// writes the document back atomically. A document that cannot be parsed is
// left untouched.
func (s *FileStore) Save(profile *UserProfile) error {
	if profile == nil || profile.UserID == "" {
		return ErrInvalidUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	doc[profile.UserID] = profile

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal memory document: %v", ErrStorage, err)
	}
	data = append(data, '\n')

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write memory document %s: %v", ErrStorage, s.path, err)
	}

	return nil
}

// Users returns the stored user IDs in sorted order.
func (s *FileStore) Users() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}

	users := make([]string, 0, len(doc))
	for id := range doc {
		users = append(users, id)
	}
	sort.Strings(users)
	return users, nil
}

// readDocument loads the document. A missing or blank file is an empty document.
func (s *FileStore) readDocument() (Document, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read memory document %s: %v", ErrStorage, s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse memory document %s: %v", ErrStorage, s.path, err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}
