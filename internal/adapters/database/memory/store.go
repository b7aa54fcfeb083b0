// Package memory provides a ledger store kept entirely in process memory.
//
// Every unit of work runs under a single mutex against a copy-on-write view of
// the state. Only tables the unit of work writes are copied, and the view
// replaces the live state only when the unit of work succeeds.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
)

// Store implements portsrepo.TransactionManager and portssvc.OrganizationDirectory.
type Store struct {
	mu sync.Mutex
	st *state

	dirMu sync.RWMutex
	orgs  map[string]domain.Organization
	users map[string]domain.User
}

var (
	_ portsrepo.TransactionManager   = (*Store)(nil)
	_ portssvc.OrganizationDirectory = (*Store)(nil)
)

// New returns an empty store.
func New() *Store {
	return &Store{
		st:    newState(),
		orgs:  make(map[string]domain.Organization),
		users: make(map[string]domain.User),
	}
}

// WithinTx runs fn against a copy-on-write view of the state and publishes it on
// success. A unit of work that only reads copies nothing and publishes nothing.
func (s *Store) WithinTx(ctx context.Context, fn portsrepo.UnitOfWork) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, work.repositories()); err != nil {
		return err
	}
	if work.dirty {
		s.st = work
	}
	return nil
}

// AddOrganization registers an organization in the directory.
func (s *Store) AddOrganization(org domain.Organization) {
	s.dirMu.Lock()
	defer s.dirMu.Unlock()
	s.orgs[org.OrganizationID] = org
}

// AddUser registers a user in the directory.
func (s *Store) AddUser(user domain.User) {
	s.dirMu.Lock()
	defer s.dirMu.Unlock()
	s.users[user.UserID] = user
}

func (s *Store) FindOrganizationByID(_ context.Context, organizationID string) (*domain.Organization, error) {
	s.dirMu.RLock()
	defer s.dirMu.RUnlock()
	org, ok := s.orgs[organizationID]
	if !ok {
		return nil, fmt.Errorf("%w: organization %s", apperrors.ErrNotFound, organizationID)
	}
	return &org, nil
}

func (s *Store) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	s.dirMu.RLock()
	defer s.dirMu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return &user, nil
}

func (s *Store) ListUserIDsByOrganization(_ context.Context, organizationID string) ([]string, error) {
	s.dirMu.RLock()
	defer s.dirMu.RUnlock()
	var ids []string
	for id, u := range s.users {
		if u.OrganizationID == organizationID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Store) ListBankUserIDs(_ context.Context) ([]string, error) {
	s.dirMu.RLock()
	defer s.dirMu.RUnlock()
	var ids []string
	for id, u := range s.users {
		if org, ok := s.orgs[u.OrganizationID]; ok && org.IsBank {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
