package scheduler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/NastyaGoryachaya/coin-tracker/internal/scheduler"
	"github.com/NastyaGoryachaya/coin-tracker/internal/scheduler/mocks"
)

func TestParseSchedule(t *testing.T) {
	base := time.Date(2025, 9, 1, 12, 1, 30, 0, time.UTC)

	tests := []struct {
		setting string
		want    time.Time
		wantErr bool
	}{
		{"5m", base.Add(5 * time.Minute), false},
		{"*/5 * * * *", time.Date(2025, 9, 1, 12, 5, 0, 0, time.UTC), false},
		{"-1s", time.Time{}, true},
		{"every now and then", time.Time{}, true},
	}
	for _, tt := range tests {
		sched, err := scheduler.ParseSchedule(tt.setting)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%q: err=%v wantErr=%v", tt.setting, err, tt.wantErr)
		}
		if err != nil {
			continue
		}
		if got := sched.Next(base); !got.Equal(tt.want) {
			t.Fatalf("%q: next=%s want %s", tt.setting, got, tt.want)
		}
	}
}

func TestStart_RunsImmediatelyForEveryCurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	warmer := mocks.NewMockWarmer(ctrl)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := scheduler.NewScheduler(warmer, "1h", []string{"usd", "ngn"}, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		warmer.EXPECT().LoadCoinList(gomock.Any(), "usd").Return(0, errors.New("rate limited")),
		warmer.EXPECT().LoadCoinList(gomock.Any(), "ngn").DoAndReturn(func(context.Context, string) (int, error) {
			cancel()
			return 500, nil
		}),
	)

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("scheduler did not stop after cancel")
	}
}
