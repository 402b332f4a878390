package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ifclub/ifclub-api/internal/member"
	"github.com/ifclub/ifclub-api/internal/model"
)

// MemoryMemberStore is an in-memory member.Store for service tests.
// Members are stored by value so callers never share pointers with the store.
type MemoryMemberStore struct {
	mu      sync.Mutex
	nextID  uint64
	members map[uint64]model.Member

	// Err, when set, is returned by every operation
	Err error
}

var _ member.Store = (*MemoryMemberStore)(nil)

func NewMemoryMemberStore() *MemoryMemberStore {
	return &MemoryMemberStore{members: make(map[uint64]model.Member)}
}

func (s *MemoryMemberStore) Create(_ context.Context, m *model.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	if s.emailTaken(m.Email, 0) {
		return fmt.Errorf("create member: %w", member.ErrDuplicateEmail)
	}
	s.nextID++
	m.ID = s.nextID
	s.members[m.ID] = *m
	return nil
}

func (s *MemoryMemberStore) FindByID(_ context.Context, id uint64) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	m, ok := s.members[id]
	if !ok {
		return nil, fmt.Errorf("memberID=%d: %w", id, member.ErrMemberNotFound)
	}
	return &m, nil
}

func (s *MemoryMemberStore) FindByEmail(_ context.Context, email string) (*model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.members {
		if m.Email == email {
			return &m, nil
		}
	}
	return nil, nil
}

func (s *MemoryMemberStore) FindAll(_ context.Context) ([]model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	members := make([]model.Member, 0, len(s.members))
	for _, m := range s.members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (s *MemoryMemberStore) DeleteByID(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	delete(s.members, id)
	return nil
}

func (s *MemoryMemberStore) Update(_ context.Context, m *model.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.members[m.ID]
	if !ok {
		return fmt.Errorf("memberID=%d: %w", m.ID, member.ErrMemberNotFound)
	}
	if s.emailTaken(m.Email, m.ID) {
		return fmt.Errorf("update member id=%d: %w", m.ID, member.ErrDuplicateEmail)
	}
	updated := *m
	updated.RefreshToken = stored.RefreshToken
	updated.CreatedAt = stored.CreatedAt
	s.members[m.ID] = updated
	return nil
}

func (s *MemoryMemberStore) UpdateRefreshToken(_ context.Context, id uint64, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	m, ok := s.members[id]
	if !ok {
		return fmt.Errorf("memberID=%d: %w", id, member.ErrMemberNotFound)
	}
	m.RefreshToken = &refreshToken
	s.members[id] = m
	return nil
}

// Len returns the number of stored members
func (s *MemoryMemberStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}

// emailTaken must be called with mu held
func (s *MemoryMemberStore) emailTaken(email string, exceptID uint64) bool {
	for id, m := range s.members {
		if id != exceptID && m.Email == email {
			return true
		}
	}
	return false
}
