package repositories

import (
	"time"

	"bankist/internal/models"

	"github.com/shopspring/decimal"
)

// Clock returns the timestamp recorded for a movement
type Clock func() time.Time

// AccountRepositoryInterface defines the contract for the process-wide Account Set.
// Returned accounts are snapshots; all mutation goes through the repository.
type AccountRepositoryInterface interface {
	Add(account *models.Account) error
	Remove(shortID string) error
	GetByShortID(shortID string) (*models.Account, error)
	Exists(shortID string) bool
	List() []*models.Account
	Count() int
	AppendMovement(shortID string, amount decimal.Decimal, at time.Time) (*models.Account, error)
	ExecuteAtomicTransfer(fromShortID, toShortID string, amount decimal.Decimal, clock Clock) error
}
