// Package session owns the per-creator profile map and its durable copy on
// disk. The in-memory map is authoritative for the life of the process;
// persistence failures are logged and never fatal.
package session

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/influenxers/coachbot/internal/intent"
	"github.com/influenxers/coachbot/internal/model/profile"
)

// DefaultRetention is how long an idle profile is kept before eviction.
const DefaultRetention = 7 * 24 * time.Hour

var ErrUnknownField = errors.New("unknown profile field")

// Store encapsulates the shared profile map. Request handlers and the
// background flush/eviction loops touch the same map, so every access goes
// through the mutex.
//
// Persistence is write-through: every mutating call rewrites the session
// file, and a periodic flush covers anything missed. Lost races between two
// events for the same user are accepted (last write wins); profile fields
// are coarse overwrites, not merges.
type Store struct {
	mu       sync.RWMutex
	path     string
	profiles map[string]*profile.Profile
}

// NewStore returns an empty store persisting to path. Call Load before
// serving to pick up the durable copy.
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		profiles: make(map[string]*profile.Profile),
	}
}

// Load reads the durable session file. A missing, unreadable or corrupt
// file leaves the store empty and logs the condition; startup proceeds
// either way.
func (s *Store) Load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[session] no session file at %s, starting empty", s.path)
		} else {
			log.Printf("[session] failed to read session file %s: %v, starting empty", s.path, err)
		}
		return
	}

	loaded := make(map[string]*profile.Profile)
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("[session] failed to parse session file %s: %v, starting empty", s.path, err)
		return
	}

	s.mu.Lock()
	s.profiles = loaded
	count := len(loaded)
	s.mu.Unlock()
	log.Printf("[session] loaded %d profile(s) from %s", count, s.path)
}

// GetOrCreate returns the profile for id, creating one seeded with
// defaultHandle on first contact. Creation is idempotent: an existing
// profile is returned unchanged.
func (s *Store) GetOrCreate(id, defaultHandle string) profile.Profile {
	s.mu.Lock()
	p, ok := s.profiles[id]
	if !ok {
		p = &profile.Profile{
			ID:              id,
			TikTokHandle:    defaultHandle,
			LastInteraction: time.Now().UTC(),
		}
		s.profiles[id] = p
	}
	snapshot := *p
	s.mu.Unlock()

	if !ok {
		s.Flush()
	}
	return snapshot
}

// Update sets a single field, creating the profile first if the user is
// unknown so the write is never lost.
func (s *Store) Update(id string, field profile.Field, value string) error {
	s.mu.Lock()
	p, ok := s.profiles[id]
	if !ok {
		p = &profile.Profile{ID: id, LastInteraction: time.Now().UTC()}
		s.profiles[id] = p
	}

	switch field {
	case profile.FieldTikTok:
		p.TikTokHandle = value
	case profile.FieldInstagram:
		p.InstagramHandle = value
	case profile.FieldBrief:
		p.Brief = value
	default:
		s.mu.Unlock()
		return ErrUnknownField
	}
	s.mu.Unlock()

	s.Flush()
	return nil
}

// Touch records an inbound event for id. Called on every message,
// independent of intent.
func (s *Store) Touch(id string) {
	s.mu.Lock()
	p, ok := s.profiles[id]
	if ok {
		p.LastInteraction = time.Now().UTC()
	}
	s.mu.Unlock()

	if ok {
		s.Flush()
	}
}

// SetLastIntent remembers the most recent classified intent for id.
func (s *Store) SetLastIntent(id string, tag intent.Tag) {
	s.mu.Lock()
	if p, ok := s.profiles[id]; ok {
		p.LastIntent = string(tag)
	}
	s.mu.Unlock()

	s.Flush()
}

// Snapshot returns a copy of the profile for id.
func (s *Store) Snapshot(id string) (profile.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return profile.Profile{}, false
	}
	return *p, true
}

// Len reports the number of live profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// Flush persists the whole store to the session file. Failures are logged;
// the in-memory state stays authoritative.
func (s *Store) Flush() {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.profiles, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		log.Printf("[session] failed to marshal sessions: %v", err)
		return
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("[session] failed to write session file %s: %v", s.path, err)
	}
}

// EvictStale removes every profile idle for longer than retention and
// reports how many were dropped. Eviction is the only deletion path.
func (s *Store) EvictStale(retention time.Duration) int {
	cutoff := time.Now().Add(-retention)

	s.mu.Lock()
	removed := 0
	for id, p := range s.profiles {
		if p.LastInteraction.Before(cutoff) {
			delete(s.profiles, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		log.Printf("[session] evicted %d stale profile(s)", removed)
		s.Flush()
	}
	return removed
}
