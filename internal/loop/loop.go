// Package loop drives a frame callback at a fixed interval on a single
// goroutine. Input handlers posted from other goroutines run on that same
// goroutine between frames, so the callback never races with them.
package loop

import (
	"context"
	"sync"
	"time"
)

// Loop calls a tick function once per interval with the elapsed time since
// Start.
type Loop struct {
	interval time.Duration
	tick     func(time.Duration)
	posts    chan func()

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
	stop    sync.Once
}

// New returns a loop ticking every interval. A non-positive interval means
// 60 frames per second.
func New(interval time.Duration, tick func(time.Duration)) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		interval: interval,
		tick:     tick,
		posts:    make(chan func(), 256),
		done:     make(chan struct{}),
	}
}

// Start launches the loop. It returns immediately; the loop runs until ctx
// is cancelled or Stop is called. Starting twice is a no-op.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.started = true
	ctx, l.cancel = context.WithCancel(ctx)
	go l.run(ctx)
}

// Post queues fn to run on the loop goroutine before the next frame. Posts
// made once the loop has stopped are dropped.
func (l *Loop) Post(fn func()) {
	select {
	case <-l.done:
		return
	default:
	}
	select {
	case l.posts <- fn:
	case <-l.done:
	}
}

// Stop halts the loop and waits for the current frame to finish. No tick
// runs after Stop returns. Stop is safe to call more than once and before
// Start.
func (l *Loop) Stop() {
	l.stop.Do(func() {
		l.mu.Lock()
		started, cancel := l.started, l.cancel
		l.started = true
		l.mu.Unlock()
		if !started {
			close(l.done)
			return
		}
		cancel()
		<-l.done
	})
}

// Done is closed once the loop has exited.
func (l *Loop) Done() <-chan struct{} { return l.done }

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-l.posts:
			fn()
		case now := <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			l.drain(ctx)
			l.tick(now.Sub(start))
		}
	}
}

// drain runs every queued post so the frame sees all input received so far.
func (l *Loop) drain(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		select {
		case fn := <-l.posts:
			fn()
		default:
			return
		}
	}
}
