// Package seed fills the account set with the two demo customers and,
// optionally, generated ones.
package seed

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"bankist/internal/models"
	"bankist/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	// generated accounts get between these many movements
	minGeneratedMovements = 4
	maxGeneratedMovements = 10

	// history window for generated movements
	generatedHistoryDays = 365

	// withdrawals never take the balance below this
	minBalanceThreshold = 50

	// attempts per requested account before giving up on unique short ids
	maxAttemptsPerAccount = 10
)

// Credential is what a demo user types to log in
type Credential struct {
	Owner   string
	ShortID string
	PIN     int
}

type demoAccount struct {
	owner        string
	pin          int
	interestRate string
	currency     string
	locale       string
	movements    []string
	dates        []string
}

var demoAccounts = []demoAccount{
	{
		owner:        "Jonas Schmedtmann",
		pin:          1111,
		interestRate: "1.2",
		currency:     "EUR",
		locale:       "pt-PT",
		movements:    []string{"200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300"},
		dates: []string{
			"2019-11-18T21:31:17.178Z",
			"2019-12-23T07:42:02.383Z",
			"2020-01-28T09:15:04.904Z",
			"2020-04-01T10:17:24.185Z",
			"2020-05-08T14:11:59.604Z",
			"2020-05-27T17:01:17.194Z",
			"2020-07-11T23:36:17.929Z",
			"2020-07-12T10:51:36.790Z",
		},
	},
	{
		owner:        "Jessica Davis",
		pin:          2222,
		interestRate: "1.5",
		currency:     "USD",
		locale:       "en-US",
		movements:    []string{"5000", "3400", "-150", "-790", "-3210", "-1000", "8500", "-30"},
		dates: []string{
			"2019-11-01T13:15:33.035Z",
			"2019-11-30T09:48:16.867Z",
			"2019-12-25T06:04:23.907Z",
			"2020-01-25T14:18:46.235Z",
			"2020-02-05T16:33:06.386Z",
			"2020-04-10T14:43:26.374Z",
			"2020-06-25T18:49:59.371Z",
			"2020-07-26T12:01:20.894Z",
		},
	},
}

type profile struct {
	currency string
	locale   string
}

var profiles = []profile{
	{"EUR", "pt-PT"},
	{"USD", "en-US"},
	{"EUR", "de-DE"},
	{"GBP", "en-GB"},
	{"JPY", "ja-JP"},
}

var interestRates = []string{"0.7", "1", "1.2", "1.5"}

// DemoAccounts builds the two fixed demo customers
func DemoAccounts(pinCost int) ([]*models.Account, error) {
	accounts := make([]*models.Account, 0, len(demoAccounts))
	for _, d := range demoAccounts {
		params := models.NewAccountParams{
			OwnerName:    d.owner,
			PIN:          d.pin,
			InterestRate: decimal.RequireFromString(d.interestRate),
			Currency:     d.currency,
			Locale:       d.locale,
		}
		for i, m := range d.movements {
			at, err := time.Parse(time.RFC3339Nano, d.dates[i])
			if err != nil {
				return nil, fmt.Errorf("failed to parse movement date for %s: %w", d.owner, err)
			}
			params.Movements = append(params.Movements, decimal.RequireFromString(m))
			params.MovementDates = append(params.MovementDates, at)
		}

		account, err := models.NewAccount(params, pinCost)
		if err != nil {
			return nil, fmt.Errorf("failed to build demo account %s: %w", d.owner, err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// Generator creates plausible random accounts. The same seed yields the same
// owners, PINs and amounts.
type Generator struct {
	faker   *gofakeit.Faker
	pinCost int
	now     func() time.Time
}

// NewGenerator creates a generator. A zero seed picks a random one.
func NewGenerator(seed uint64, pinCost int) *Generator {
	return &Generator{
		faker:   gofakeit.New(seed),
		pinCost: pinCost,
		now:     time.Now,
	}
}

// Account generates one account with a positive balance history
func (g *Generator) Account() (*models.Account, Credential, error) {
	f := g.faker
	owner := f.FirstName() + " " + f.LastName()
	pin := f.Number(1000, 9999)
	p := profiles[f.Number(0, len(profiles)-1)]

	params := models.NewAccountParams{
		OwnerName:    owner,
		PIN:          pin,
		InterestRate: decimal.RequireFromString(interestRates[f.Number(0, len(interestRates)-1)]),
		Currency:     p.currency,
		Locale:       p.locale,
	}
	params.Movements, params.MovementDates = g.history()

	account, err := models.NewAccount(params, g.pinCost)
	if err != nil {
		return nil, Credential{}, err
	}
	return account, Credential{Owner: account.OwnerName, ShortID: account.ShortID, PIN: pin}, nil
}

// history opens with a deposit and never lets the balance drop below
// minBalanceThreshold
func (g *Generator) history() ([]decimal.Decimal, []time.Time) {
	f := g.faker
	now := g.now().UTC()
	start := now.AddDate(0, 0, -generatedHistoryDays)

	count := f.Number(minGeneratedMovements, maxGeneratedMovements)
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = f.DateRange(start, now).UTC()
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })

	movements := make([]decimal.Decimal, count)
	balance := decimal.Zero
	floor := decimal.NewFromInt(minBalanceThreshold)
	for i := range movements {
		amount := decimal.NewFromFloat(f.Price(100, 5000)).Round(2)
		if i > 0 && f.Float64Range(0, 1) < 0.4 {
			withdrawal := decimal.NewFromFloat(f.Price(10, 1500)).Round(2)
			if balance.Sub(withdrawal).GreaterThanOrEqual(floor) {
				amount = withdrawal.Neg()
			}
		}
		movements[i] = amount
		balance = balance.Add(amount)
	}
	return movements, dates
}

// Options controls Load
type Options struct {
	GeneratedAccounts int
	FakerSeed         uint64
	PINHashCost       int
}

// Load adds the demo accounts and opts.GeneratedAccounts generated ones to
// repo. Generated owners whose short id is taken are skipped and redrawn.
func Load(repo repositories.AccountRepositoryInterface, opts Options, logger *slog.Logger) ([]Credential, error) {
	if logger == nil {
		logger = slog.Default()
	}

	demo, err := DemoAccounts(opts.PINHashCost)
	if err != nil {
		return nil, err
	}

	credentials := make([]Credential, 0, len(demo)+opts.GeneratedAccounts)
	for i, account := range demo {
		if err := repo.Add(account); err != nil {
			return nil, fmt.Errorf("failed to add demo account %s: %w", account.ShortID, err)
		}
		credentials = append(credentials, Credential{
			Owner:   account.OwnerName,
			ShortID: account.ShortID,
			PIN:     demoAccounts[i].pin,
		})
	}

	if opts.GeneratedAccounts <= 0 {
		return credentials, nil
	}

	gen := NewGenerator(opts.FakerSeed, opts.PINHashCost)
	added := 0
	for attempt := 0; added < opts.GeneratedAccounts && attempt < opts.GeneratedAccounts*maxAttemptsPerAccount; attempt++ {
		account, credential, err := gen.Account()
		if err != nil {
			return nil, fmt.Errorf("failed to generate account: %w", err)
		}

		if err := repo.Add(account); err != nil {
			if errors.Is(err, repositories.ErrDuplicateShortID) {
				logger.Debug("skipping generated account with taken short id", "short_id", account.ShortID)
				continue
			}
			return nil, fmt.Errorf("failed to add generated account: %w", err)
		}
		credentials = append(credentials, credential)
		added++
	}

	if added < opts.GeneratedAccounts {
		logger.Warn("could not generate all requested accounts",
			"requested", opts.GeneratedAccounts,
			"added", added,
		)
	}

	logger.Info("account set seeded", "accounts", repo.Count())
	return credentials, nil
}
