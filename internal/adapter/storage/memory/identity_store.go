package memory

import (
	"context"
	"sync"

	"irispay/internal/core/domain"
	"irispay/pkg/apperror"

	"github.com/google/uuid"
)

// IdentityStore implements ports.IdentityStore with process-lifetime maps.
// Biometric keys index the primary map, so lookup-by-key is O(1) and
// uniqueness is enforced at insert.
type IdentityStore struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*domain.Identity
	byKey      map[string]*domain.Identity
	byUsername map[string]*domain.Identity
}

// NewIdentityStore creates an empty identity store.
func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		byID:       make(map[uuid.UUID]*domain.Identity),
		byKey:      make(map[string]*domain.Identity),
		byUsername: make(map[string]*domain.Identity),
	}
}

// Register inserts a new identity. It fails with DuplicateKey if the
// biometric key is already enrolled (case-sensitive exact match) and with
// UsernameExists on a username clash; a failed insert leaves the store
// untouched.
func (s *IdentityStore) Register(ctx context.Context, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byKey[identity.BiometricKey]; exists {
		return apperror.ErrDuplicateKey()
	}
	if _, exists := s.byUsername[identity.Username]; exists {
		return apperror.ErrUsernameExists()
	}

	stored := *identity
	s.byID[stored.ID] = &stored
	s.byKey[stored.BiometricKey] = &stored
	s.byUsername[stored.Username] = &stored
	return nil
}

// FindByKey returns the identity enrolled under the given biometric key,
// or nil if none matches.
func (s *IdentityStore) FindByKey(ctx context.Context, biometricKey string) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneIdentity(s.byKey[biometricKey]), nil
}

// FindByID returns the identity with the given id, or nil.
func (s *IdentityStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneIdentity(s.byID[id]), nil
}

// FindByUsername returns the identity with the given username, or nil.
func (s *IdentityStore) FindByUsername(ctx context.Context, username string) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneIdentity(s.byUsername[username]), nil
}

// cloneIdentity copies the stored record so callers cannot mutate it;
// biometricKey is immutable after enrollment.
func cloneIdentity(i *domain.Identity) *domain.Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
