package repositories

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrRecipientNotFound = errors.New("recipient account not found")
	ErrDuplicateShortID  = errors.New("an account with this short id already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrSameAccount       = errors.New("source and destination are the same account")
	ErrNilAccount        = errors.New("account is nil")
)

// accountRepository keeps the Account Set in memory. A single mutex
// serializes every read and write so cross-account operations are atomic.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() AccountRepositoryInterface {
	return &accountRepository{
		accounts: make(map[string]*models.Account),
	}
}

// Add inserts a validated account keyed by its short id
func (r *accountRepository) Add(account *models.Account) error {
	if account == nil {
		return ErrNilAccount
	}
	if err := account.Validate(); err != nil {
		return fmt.Errorf("failed to add account: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ShortID]; exists {
		return ErrDuplicateShortID
	}
	r.accounts[account.ShortID] = account.Clone()
	return nil
}

// Remove deletes an account permanently
func (r *accountRepository) Remove(shortID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[shortID]; !exists {
		return ErrAccountNotFound
	}
	delete(r.accounts, shortID)
	return nil
}

// GetByShortID retrieves a snapshot of an account
func (r *accountRepository) GetByShortID(shortID string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[shortID]
	if !exists {
		return nil, ErrAccountNotFound
	}
	return account.Clone(), nil
}

// Exists checks if an account with the short id is in the set
func (r *accountRepository) Exists(shortID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.accounts[shortID]
	return exists
}

// List returns snapshots of every account ordered by short id
func (r *accountRepository) List() []*models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ShortID < out[j].ShortID
	})
	return out
}

// Count returns the number of accounts in the set
func (r *accountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accounts)
}

// AppendMovement records one movement and returns the updated snapshot
func (r *accountRepository) AppendMovement(shortID string, amount decimal.Decimal, at time.Time) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[shortID]
	if !exists {
		return nil, ErrAccountNotFound
	}
	account.AppendMovement(amount, at)
	return account.Clone(), nil
}

// ExecuteAtomicTransfer debits the source and credits the destination inside
// one critical section. The balance check happens under the same lock so
// no other mutation can interleave. Each side gets its own timestamp.
func (r *accountRepository) ExecuteAtomicTransfer(fromShortID, toShortID string, amount decimal.Decimal, clock Clock) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if fromShortID == toShortID {
		return ErrSameAccount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	from, ok := r.accounts[fromShortID]
	if !ok {
		return ErrAccountNotFound
	}
	to, ok := r.accounts[toShortID]
	if !ok {
		return ErrRecipientNotFound
	}

	if !from.CanWithdraw(amount) {
		return ErrInsufficientFunds
	}

	from.AppendMovement(amount.Neg(), clock())
	to.AppendMovement(amount, clock())
	return nil
}
