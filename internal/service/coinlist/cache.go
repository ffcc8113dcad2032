package coinlist

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
	"github.com/NastyaGoryachaya/coin-tracker/internal/repository"
)

type cacheMeta struct {
	TS       int64 `json:"ts"`
	Expected int   `json:"expected"`
}

func listKey(cur string) string { return "coins_" + cur }
func metaKey(cur string) string { return "coins_" + cur + "_meta" }

// readCache - кэш годен, только если он моложе TTL, записан для того же expected
// и в нём не меньше expected монет. Негодный кэш не удаляется, его перезапишет следующая полная загрузка.
func (s *Service) readCache(ctx context.Context, cur string, expected int) ([]domain.CoinSummary, bool) {
	rawMeta, err := s.store.Get(ctx, metaKey(cur))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("coin list cache read failed", slog.String("currency", cur), slog.String("err", err.Error()))
		}
		return nil, false
	}
	var meta cacheMeta
	if err := json.Unmarshal(rawMeta, &meta); err != nil {
		s.logger.Warn("coin list cache meta is corrupt", slog.String("currency", cur), slog.String("err", err.Error()))
		return nil, false
	}
	if meta.Expected != expected || s.clock.Now().UnixMilli()-meta.TS >= s.cfg.TTL.Milliseconds() {
		return nil, false
	}

	rawList, err := s.store.Get(ctx, listKey(cur))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("coin list cache read failed", slog.String("currency", cur), slog.String("err", err.Error()))
		}
		return nil, false
	}
	var list []domain.CoinSummary
	if err := json.Unmarshal(rawList, &list); err != nil {
		s.logger.Warn("coin list cache is corrupt", slog.String("currency", cur), slog.String("err", err.Error()))
		return nil, false
	}
	if len(list) < expected {
		return nil, false
	}
	return list, true
}

// persist пишет сначала список, потом метаданные. Ошибка записи не ломает уже полученный результат.
func (s *Service) persist(ctx context.Context, cur string, list []domain.CoinSummary, expected int) {
	rawList, err := json.Marshal(list)
	if err != nil {
		s.logger.Error("marshal coin list", slog.String("err", err.Error()))
		return
	}
	rawMeta, err := json.Marshal(cacheMeta{TS: s.clock.Now().UnixMilli(), Expected: expected})
	if err != nil {
		s.logger.Error("marshal coin list meta", slog.String("err", err.Error()))
		return
	}

	// запись не должна обрываться, если все ожидающие уже ушли
	wctx := context.WithoutCancel(ctx)
	if err := s.store.Set(wctx, listKey(cur), rawList); err != nil {
		s.logger.Error("persist coin list", slog.String("currency", cur), slog.String("err", err.Error()))
		return
	}
	if err := s.store.Set(wctx, metaKey(cur), rawMeta); err != nil {
		s.logger.Error("persist coin list meta", slog.String("currency", cur), slog.String("err", err.Error()))
	}
}
