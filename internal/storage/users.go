package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"server/internal/domain"
)

// ErrEmailTaken is returned when a signup reuses an existing email.
var ErrEmailTaken = errors.New("storage: email already registered")

// UserRecord is one account entry in users.json. Passwords are stored only as
// bcrypt hashes.
type UserRecord struct {
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	Projects     []string  `json:"projects,omitempty"`
}

// UserStore keeps all accounts in a single users.json file guarded by a
// process-wide mutex. Every mutation rewrites the whole file through a temp
// file and rename so a crash never leaves a half-written document behind.
type UserStore struct {
	path string

	mu    sync.Mutex
	users map[string]UserRecord
}

// NewUserStore loads (or initializes) the account file at path.
func NewUserStore(path string) (*UserStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("storage: users file path is required")
	}
	s := &UserStore{path: path, users: make(map[string]UserRecord)}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// first run, empty store
	case err != nil:
		return nil, fmt.Errorf("storage: read users file: %w", err)
	default:
		if err := json.Unmarshal(data, &s.users); err != nil {
			return nil, fmt.Errorf("storage: parse users file: %w", err)
		}
	}
	return s, nil
}

// Signup registers a new account. The email is lowercased before use as the
// record key.
func (s *UserStore) Signup(email, password string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errors.New("storage: email is required")
	}
	if len(password) < 6 {
		return errors.New("storage: password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("storage: hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return ErrEmailTaken
	}
	s.users[email] = UserRecord{PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	return s.flushLocked()
}

// Authenticate verifies the credentials and returns the canonical email.
func (s *UserStore) Authenticate(email, password string) (string, error) {
	email = NormalizeEmail(email)

	s.mu.Lock()
	rec, ok := s.users[email]
	s.mu.Unlock()
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrUnauthorized
	}
	return email, nil
}

// AttachProject records a saved project ID on the account.
func (s *UserStore) AttachProject(email, projectID string) error {
	email = NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[email]
	if !ok {
		return domain.ErrNotFound
	}
	for _, id := range rec.Projects {
		if id == projectID {
			return nil
		}
	}
	rec.Projects = append(rec.Projects, projectID)
	s.users[email] = rec
	return s.flushLocked()
}

// ProjectIDs returns the project IDs saved by the account, oldest first.
func (s *UserStore) ProjectIDs(email string) []string {
	email = NormalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[email]
	if !ok {
		return nil
	}
	out := make([]string, len(rec.Projects))
	copy(out, rec.Projects)
	return out
}

func (s *UserStore) flushLocked() error {
	return writeJSONFile(s.path, s.users)
}

// NormalizeEmail lowercases and trims an email for use as a record key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// writeJSONFile writes v as indented JSON via a sibling temp file and an
// atomic rename.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode json: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: ensure directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: replace file: %w", err)
	}
	return nil
}
