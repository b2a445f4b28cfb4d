package db

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-wavecleanup/types"
)

// MemoryStore keeps submissions in process memory. Used when Firestore is not configured.
type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]types.User
	contacts     []types.ContactMessage
	applications []types.PartnerApplication
	digests      []types.Digest
	now          func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]types.User),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) SaveUser(_ context.Context, u types.User) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	s.users[u.ID] = u
	return u, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id string) (types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return types.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u, nil
}

func (s *MemoryStore) ListUsersSince(_ context.Context, since time.Time) ([]types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.User
	for _, u := range s.users {
		if !u.CreatedAt.Before(since) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) CountUsers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

func (s *MemoryStore) SaveContactMessage(_ context.Context, m types.ContactMessage) (types.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	s.contacts = append(s.contacts, m)
	return m, nil
}

func (s *MemoryStore) SavePartnerApplication(_ context.Context, a types.PartnerApplication) (types.PartnerApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	s.applications = append(s.applications, a)
	return a, nil
}

func (s *MemoryStore) SaveDigest(_ context.Context, d types.Digest) (types.Digest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = d.WindowEnd.UTC().Format("20060102T150405Z")
	}
	s.digests = append(s.digests, d)
	return d, nil
}

func (s *MemoryStore) LatestDigest(_ context.Context) (types.Digest, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var (
		latest types.Digest
		found  bool
	)
	for _, d := range s.digests {
		if !found || d.WindowEnd.After(latest.WindowEnd) {
			latest, found = d, true
		}
	}
	return latest, found, nil
}

// ContactMessages returns what has been stored so far.
func (s *MemoryStore) ContactMessages() []types.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.ContactMessage(nil), s.contacts...)
}

func (s *MemoryStore) PartnerApplications() []types.PartnerApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.PartnerApplication(nil), s.applications...)
}
