package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"bankist/internal/app"
	"bankist/internal/config"
	"bankist/internal/dto"
	"bankist/internal/models"
	"bankist/internal/services"
	"bankist/internal/validation"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

const (
	actionOverview = "overview"
	actionSortAsc  = "sort_asc"
	actionSortDesc = "sort_desc"
	actionTransfer = "transfer"
	actionLoan     = "loan"
	actionClose    = "close"
	actionLogout   = "logout"
	actionQuit     = "quit"
)

func main() {
	cfg := config.Load(".env")

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "bankist",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	a, err := app.New(cfg, slog.New(logger))
	if err != nil {
		logger.Fatal("failed to start", "err", err)
	}
	defer a.Close()

	a.Sessions.Subscribe(&notifier{log: logger})

	fmt.Println("Demo accounts:")
	for _, c := range a.Credentials {
		fmt.Printf("  %-24s user %-4s PIN %d\n", c.Owner, c.ShortID, c.PIN)
	}

	t := &terminal{sessions: a.Sessions, log: logger}
	if err := t.run(context.Background()); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		logger.Error("terminal stopped", "err", err)
	}
}

type terminal struct {
	sessions services.SessionServiceInterface
	log      *log.Logger
}

func (t *terminal) run(ctx context.Context) error {
	for {
		if !t.sessions.Active() {
			if err := t.login(ctx); err != nil {
				return err
			}
			continue
		}

		action, err := t.menu()
		if err != nil {
			return err
		}

		switch action {
		case actionOverview:
			t.printOverview(models.SortNone)
		case actionSortAsc:
			t.printOverview(models.SortAscending)
		case actionSortDesc:
			t.printOverview(models.SortDescending)
		case actionTransfer:
			err = t.transfer(ctx)
		case actionLoan:
			err = t.loan(ctx)
		case actionClose:
			err = t.closeAccount(ctx)
		case actionLogout:
			t.sessions.Logout(ctx)
		case actionQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (t *terminal) login(ctx context.Context) error {
	var shortID, pin string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("User").
			Value(&shortID).
			Validate(func(s string) error { return validation.GetValidator().Var(s, "required,short_id") }),
		huh.NewInput().
			Title("PIN").
			EchoMode(huh.EchoModePassword).
			Value(&pin).
			Validate(func(s string) error { return validation.GetValidator().Var(s, "required,pin") }),
	))
	if err := form.Run(); err != nil {
		return err
	}

	if _, err := t.sessions.Login(ctx, shortID, pin); err != nil {
		if errors.Is(err, services.ErrAuthFailure) {
			t.log.Warn("Invalid user or PIN")
			return nil
		}
		return err
	}

	t.printOverview(models.SortNone)
	return nil
}

func (t *terminal) menu() (string, error) {
	var action string

	timer := t.sessions.Timer()
	err := huh.NewSelect[string]().
		Title(fmt.Sprintf("You will be logged out in %s", timer.Label)).
		Options(
			huh.NewOption("Show account", actionOverview),
			huh.NewOption("Sort movements ascending", actionSortAsc),
			huh.NewOption("Sort movements descending", actionSortDesc),
			huh.NewOption("Transfer money", actionTransfer),
			huh.NewOption("Request loan", actionLoan),
			huh.NewOption("Close account", actionClose),
			huh.NewOption("Log out", actionLogout),
			huh.NewOption("Quit", actionQuit),
		).
		Value(&action).
		Run()

	return action, err
}

func (t *terminal) transfer(ctx context.Context) error {
	var to, amount string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Transfer to").Value(&to),
		huh.NewInput().Title("Amount").Value(&amount),
	))
	if err := form.Run(); err != nil {
		return err
	}

	t.report("transfer", t.sessions.Transfer(ctx, to, amount))
	return nil
}

func (t *terminal) loan(ctx context.Context) error {
	var amount string

	if err := huh.NewInput().Title("Loan amount").Value(&amount).Run(); err != nil {
		return err
	}

	result := t.sessions.RequestLoan(ctx, amount)
	if result.Status == models.OperationScheduled {
		t.log.Info("Loan approved, the money arrives shortly")
		return nil
	}
	t.report("loan", result)
	return nil
}

func (t *terminal) closeAccount(ctx context.Context) error {
	var shortID, pin string
	var confirm bool

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Confirm user").Value(&shortID),
		huh.NewInput().Title("Confirm PIN").EchoMode(huh.EchoModePassword).Value(&pin),
		huh.NewConfirm().Title("Close this account for good?").Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	t.report("close account", t.sessions.CloseAccount(ctx, shortID, pin))
	return nil
}

// report stays quiet on rejection reasons; the ledger did not change
func (t *terminal) report(operation string, result models.OperationResult) {
	if result.Applied() {
		t.printOverview(models.SortNone)
		return
	}
	t.log.Debug("operation not applied", "operation", operation, "reason", result.Reason)
}

func (t *terminal) printOverview(order models.SortOrder) {
	overview, err := t.sessions.Overview(order)
	if err != nil {
		return
	}
	ov := dto.NewOverviewResponse(overview, time.Now())

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", ov.Welcome)
	fmt.Fprintf(&b, "Current balance (as of %s): %s\n\n", ov.Date, ov.Balance.Formatted)
	for i := len(ov.Movements) - 1; i >= 0; i-- {
		m := ov.Movements[i]
		fmt.Fprintf(&b, "  %2d %-10s %-12s %16s\n", i+1, strings.ToUpper(m.Type), m.DateLabel, m.Amount.Formatted)
	}
	fmt.Fprintf(&b, "\nIn %s   Out %s   Interest %s\n",
		ov.Summary.In.Formatted, ov.Summary.Out.Formatted, ov.Summary.Interest.Formatted)

	fmt.Println(b.String())
}

type notifier struct {
	log *log.Logger
}

func (n *notifier) OnSessionStart(account *models.Account) {
	n.log.Info("Session started", "user", account.ShortID)
}

func (n *notifier) OnSessionEnd() {
	n.log.Info("Log in to get started")
}

func (n *notifier) OnSessionExpired() {
	n.log.Warn("Session expired")
}

func (n *notifier) OnLedgerChanged(account *models.Account) {
	n.log.Info("Balance updated", "balance", services.FormatCurrency(account.Balance(), account.Locale, account.Currency))
}
