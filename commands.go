package main

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomfi/bloomfi/internal/api"
	"github.com/bloomfi/bloomfi/internal/config"
	"github.com/bloomfi/bloomfi/internal/session"
)

const fetchTimeout = 15 * time.Second

// loadDataCmd fetches accounts and transactions in one shot. The dashboard
// never renders partial data; either both lists arrive or the whole load
// reports an error.
func loadDataCmd(src dataSource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		accounts, err := src.Accounts(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		transactions, err := src.Transactions(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{accounts: accounts, transactions: transactions}
	}
}

// loadModalTxCmd fetches the transaction list backing the account modal and
// tags the answer with seq so stale responses can be dropped. accountID of
// accountAll keeps every row.
func loadModalTxCmd(src dataSource, accountID string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		rows, err := src.Transactions(ctx)
		if err != nil {
			return modalTxLoadedMsg{seq: seq, err: err}
		}
		if accountID != accountAll {
			kept := make([]transaction, 0, len(rows))
			for _, tx := range rows {
				if tx.accountID == accountID {
					kept = append(kept, tx)
				}
			}
			rows = kept
		}
		return modalTxLoadedMsg{seq: seq, rows: rows}
	}
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

// loginCmd authenticates against the backend, or mints a local session when
// running on mock data, then persists it.
func loginCmd(client *api.Client, cfg config.Config, username, password string) tea.Cmd {
	return func() tea.Msg {
		if cfg.API.Source == config.SourceMock {
			sess := session.Session{
				Token:       "mock-session",
				DisplayName: username,
				CreatedAt:   time.Now(),
			}
			if err := session.Save(sess); err != nil {
				return loginDoneMsg{err: err}
			}
			return loginDoneMsg{sess: sess}
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		apiSess, err := client.Login(ctx, username, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		sess := session.Session{
			Token:       apiSess.Token,
			DisplayName: apiSess.DisplayName,
			CreatedAt:   time.Now(),
		}
		if sess.DisplayName == "" {
			sess.DisplayName = username
		}
		if err := session.Save(sess); err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{sess: sess}
	}
}

func registerCmd(client *api.Client, cfg config.Config, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		if cfg.API.Source == config.SourceMock {
			sess := session.Session{
				Token:       "mock-session",
				DisplayName: username,
				CreatedAt:   time.Now(),
			}
			if err := session.Save(sess); err != nil {
				return loginDoneMsg{err: err}
			}
			return loginDoneMsg{sess: sess}
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		apiSess, err := client.Register(ctx, username, email, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		if apiSess.Token == "" {
			apiSess, err = client.Login(ctx, username, password)
			if err != nil {
				return loginDoneMsg{err: err}
			}
		}
		sess := session.Session{
			Token:       apiSess.Token,
			DisplayName: username,
			CreatedAt:   time.Now(),
		}
		if err := session.Save(sess); err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{sess: sess}
	}
}

func requestResetCmd(client *api.Client, cfg config.Config, email string) tea.Cmd {
	return func() tea.Msg {
		if cfg.API.Source == config.SourceMock {
			return resetRequestedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return resetRequestedMsg{err: client.RequestPasswordReset(ctx, email)}
	}
}

// loginErrorText turns transport and status errors into a line fit for the
// login form.
func loginErrorText(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case 401:
			return "Invalid username or password."
		case 409:
			return "That username is already taken."
		case 422:
			return "The server rejected those details."
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "connection refused") {
		return "Cannot reach the server. Check Settings."
	}
	return err.Error()
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

func saveSettingsCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return settingsSavedMsg{err: config.Save(cfg)}
	}
}
