package catalog

import (
	"sync"
	"time"
)

// Rotator cycles a featured index through the most recently fetched result
// window, so the home page shows a different strip every interval. It holds
// only the current window in memory; nothing is persisted.
type Rotator struct {
	mutex    sync.RWMutex
	window   []Movie
	index    int
	interval time.Duration
	stop     chan struct{}
	once     sync.Once
}

func NewRotator(interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Rotator{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins advancing the index every interval until Stop.
func (r *Rotator) Start() {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.Advance()
			case <-r.stop:
				return
			}
		}
	}()
}

func (r *Rotator) Stop() {
	r.once.Do(func() { close(r.stop) })
}

// Update replaces the window and resets the index.
func (r *Rotator) Update(movies []Movie) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.window = movies
	r.index = 0
}

// Advance moves the featured index one step, wrapping around the window.
func (r *Rotator) Advance() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if len(r.window) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.window)
}

// Featured returns up to n movies starting at the current index, wrapping
// around the window.
func (r *Rotator) Featured(n int) []Movie {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if len(r.window) == 0 || n <= 0 {
		return nil
	}
	if n > len(r.window) {
		n = len(r.window)
	}

	featured := make([]Movie, 0, n)
	for i := 0; i < n; i++ {
		featured = append(featured, r.window[(r.index+i)%len(r.window)])
	}
	return featured
}
