package coinlist

import (
	"context"
	"iter"
	"sync"

	"github.com/NastyaGoryachaya/coin-tracker/internal/domain"
)

// broadcaster хранит все снимки прогона, чтобы подписчик, пришедший позже, увидел их с начала.
type broadcaster struct {
	mu      sync.Mutex
	snaps   []domain.Snapshot
	updated chan struct{}
	done    bool
	err     error
}

func newBroadcaster() *broadcaster {
	return &broadcaster{updated: make(chan struct{})}
}

func (b *broadcaster) publish(snap domain.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	b.snaps = append(b.snaps, snap)
	close(b.updated)
	b.updated = make(chan struct{})
}

func (b *broadcaster) finish(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.done {
		return
	}
	b.done = true
	b.err = err
	close(b.updated)
}

func (b *broadcaster) subscribe(ctx context.Context) iter.Seq2[domain.Snapshot, error] {
	return func(yield func(domain.Snapshot, error) bool) {
		next := 0
		for {
			b.mu.Lock()
			if next < len(b.snaps) {
				snap := b.snaps[next]
				next++
				b.mu.Unlock()
				if !yield(snap, nil) {
					return
				}
				continue
			}
			if b.done {
				err := b.err
				b.mu.Unlock()
				if err != nil {
					yield(domain.Snapshot{}, err)
				}
				return
			}
			wait := b.updated
			b.mu.Unlock()

			select {
			case <-wait:
			case <-ctx.Done():
				yield(domain.Snapshot{}, ctx.Err())
				return
			}
		}
	}
}
