package clock

import (
	"sync"
	"time"
)

// Clock - абстракция времени, чтобы тесты были детерминированны
type Clock interface {
	Now() time.Time
}

// realClock - prod реализация: текущее время в UTC
type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// NewRealClock - экспортируем фабрику, чтобы внешний пакет мог получить Clock
func NewRealClock() Clock {
	return realClock{}
}

// Fake - ручные часы для тестов.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance сдвигает часы вперёд на d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
