package sound

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/poopsnake/internal/core"
)

// DefaultQueueSize is the number of cues that may wait for the player.
const DefaultQueueSize = 16

// Dispatcher hands cues to a player on its own goroutine.
// Play never blocks: cues arriving while the queue is full are dropped.
type Dispatcher struct {
	player Player
	logger *log.Logger
	queue  chan core.Cue

	muted   atomic.Bool
	dropped atomic.Int64

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewDispatcher starts the worker. It stops when ctx is done or Close is called.
func NewDispatcher(ctx context.Context, player Player, logger *log.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(ctx)
	d := &Dispatcher{
		player: player,
		logger: logger,
		queue:  make(chan core.Cue, queueSize),
		cancel: cancel,
	}
	d.wg.Add(1)
	go d.run(ctx)
	return d
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case cue := <-d.queue:
			d.player.Play(cue)
		}
	}
}

// Play queues a cue.
func (d *Dispatcher) Play(cue core.Cue) {
	if d.muted.Load() {
		return
	}
	select {
	case d.queue <- cue:
	default:
		d.dropped.Add(1)
		d.logger.Debug("sound queue full, cue dropped", "cue", cue)
	}
}

// PlayAll queues the cues of one tick in order.
func (d *Dispatcher) PlayAll(cues []core.Cue) {
	for _, c := range cues {
		d.Play(c)
	}
}

// SetMuted silences or restores cues.
func (d *Dispatcher) SetMuted(muted bool) {
	d.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new one.
func (d *Dispatcher) ToggleMute() bool {
	for {
		old := d.muted.Load()
		if d.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether cues are silenced.
func (d *Dispatcher) Muted() bool {
	return d.muted.Load()
}

// Dropped returns the number of cues lost to a full queue.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Close stops the worker and releases the player.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.cancel()
		d.wg.Wait()
		d.closeErr = d.player.Close()
	})
	return d.closeErr
}
