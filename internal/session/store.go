// Package session holds per-session workspace state: the brand asset
// aggregate plus the consultant chat history. State lives only for the
// session TTL unless the owner explicitly saves a project.
package session

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"server/internal/domain"
)

// Message is one consultant chat exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State is the workspace owned by a single session. Concurrent requests can
// carry the same session token, so State embeds its own lock; BrandService
// holds it for the duration of each operation.
type State struct {
	sync.Mutex

	Brand        *domain.BrandAsset
	Chat         []Message
	PaletteStyle string
	Language     string
}

// Options tunes the store.
type Options struct {
	TTL             time.Duration
	CleanupInterval time.Duration
	MaxChat         int
}

const (
	defaultTTL      = 2 * time.Hour
	defaultCleanup  = 10 * time.Minute
	defaultChatSize = 20
)

// Store keeps session states with TTL expiry.
type Store struct {
	cache   *cache.Cache
	maxChat int
}

// NewStore builds a store; zero options get defaults.
func NewStore(opts Options) *Store {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	cleanup := opts.CleanupInterval
	if cleanup <= 0 {
		cleanup = defaultCleanup
	}
	maxChat := opts.MaxChat
	if maxChat <= 0 {
		maxChat = defaultChatSize
	}
	return &Store{
		cache:   cache.New(ttl, cleanup),
		maxChat: maxChat,
	}
}

// Get returns the state for the session, creating an empty one on first use.
// Every access refreshes the TTL.
func (s *Store) Get(sessionID string) *State {
	if v, ok := s.cache.Get(sessionID); ok {
		state := v.(*State)
		s.cache.Set(sessionID, state, cache.DefaultExpiration)
		return state
	}
	state := &State{
		Brand:        domain.NewBrandAsset(),
		PaletteStyle: domain.DefaultPaletteStyle,
		Language:     domain.DefaultLanguage,
	}
	if err := s.cache.Add(sessionID, state, cache.DefaultExpiration); err != nil {
		// Lost the race to another first access; use the stored state.
		if v, ok := s.cache.Get(sessionID); ok {
			return v.(*State)
		}
	}
	return state
}

// AppendChat records chat turns, keeping only the most recent entries.
func (s *Store) AppendChat(sessionID string, msgs ...Message) {
	state := s.Get(sessionID)
	state.Lock()
	defer state.Unlock()
	state.Chat = append(state.Chat, msgs...)
	if len(state.Chat) > s.maxChat {
		state.Chat = state.Chat[len(state.Chat)-s.maxChat:]
	}
}

// Reset discards the session state.
func (s *Store) Reset(sessionID string) {
	s.cache.Delete(sessionID)
}
