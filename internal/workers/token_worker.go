package workers

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/alinamiashalkina/event-creator/internal/logger"
	"github.com/alinamiashalkina/event-creator/internal/repositories"
)

// TokenWorker периодически чистит черный список от токенов
// с истекшим сроком: после истечения токен и так не проходит
// проверку подписи, хранить его незачем.
type TokenWorker struct {
	cron      *cron.Cron
	tokenRepo repositories.TokenRepository
}

func NewTokenWorker(tokenRepo repositories.TokenRepository) *TokenWorker {
	return &TokenWorker{
		cron:      cron.New(),
		tokenRepo: tokenRepo,
	}
}

// Start запускает ежечасную очистку
func (w *TokenWorker) Start() error {
	if _, err := w.cron.AddFunc("@hourly", w.purge); err != nil {
		return err
	}
	w.cron.Start()
	return nil
}

func (w *TokenWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

func (w *TokenWorker) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := w.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		logger.Error("failed to purge expired blacklisted tokens", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("purged expired blacklisted tokens", "count", deleted)
	}
}
