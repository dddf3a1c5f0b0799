package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/corbin/geoquiz/internal/game"
	"github.com/corbin/geoquiz/internal/quiz"
	"github.com/corbin/geoquiz/internal/session"
	"github.com/corbin/geoquiz/internal/store"
)

// loadContent returns the configured question bank and a catalog that
// knows its prompts.
func loadContent() (*quiz.Bank, *quiz.Catalog, error) {
	bank := quiz.DefaultBank()
	var texts map[string]string
	if cfg.QuestionsPath != "" {
		bf, err := quiz.LoadBankFile(cfg.QuestionsPath)
		if err != nil {
			return nil, nil, err
		}
		bank, texts = bf.Bank, bf.Texts
		log.Info("loaded question bank",
			zap.String("path", cfg.QuestionsPath),
			zap.Int("questions", bank.Len()),
		)
	}

	cat, err := quiz.NewCatalog(cfg.Lang, texts)
	if err != nil {
		return nil, nil, fmt.Errorf("build catalog: %w", err)
	}
	return bank, cat, nil
}

// openStore opens the configured snapshot backend.
func openStore(ctx context.Context) (store.Backend, error) {
	b, err := store.OpenURL(ctx, cfg.Store, store.Options{RedisTTL: cfg.RedisTTL})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return b, nil
}

// newGame wires the bank, catalog and store into a Game and restores the
// latest saved snapshot.
func newGame(ctx context.Context, backend store.Backend) (*game.Game, error) {
	bank, cat, err := loadContent()
	if err != nil {
		return nil, err
	}
	g := game.New(session.New(bank), cat, backend.SnapshotRepo(),
		game.WithLogger(log),
		game.WithKeep(cfg.SnapshotKeep),
	)
	if err := g.Restore(ctx); err != nil {
		// A store that cannot be read still allows a fresh round.
		log.Warn("restore session", zap.Error(err))
	}
	return g, nil
}
