package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloomfi/bloomfi/internal/api"
	"github.com/bloomfi/bloomfi/internal/config"
	"github.com/bloomfi/bloomfi/internal/database"
	"github.com/bloomfi/bloomfi/internal/session"
	"github.com/bloomfi/bloomfi/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	// A missing or unreadable session file just means signing in again.
	sess, err := session.Load()
	if err != nil {
		sess = session.Session{}
	}

	client := api.New(cfg.API.BaseURL, sess.Token, cfg.API.HTTPTimeout())

	var src dataSource
	if cfg.API.Source == config.SourceMock {
		s, err := openMockStore(cfg)
		if err != nil {
			fmt.Println("database error:", err)
			os.Exit(1)
		}
		src = mockSource{store: s}
	} else {
		src = apiSource{client: client}
	}

	p := tea.NewProgram(newModel(cfg, sess, src, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

// openMockStore opens the local sqlite database, migrates it, and seeds the
// sample dataset on first run.
func openMockStore(cfg config.Config) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	s := store.New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.SeedSampleData(ctx, s, time.Now()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
