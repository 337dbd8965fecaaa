package cart

import (
	"sync"
	"time"
)

// DefaultNoticeDelay is how long the "item added" confirmation stays visible.
const DefaultNoticeDelay = 2500 * time.Millisecond

// Stopper is the part of *time.Timer a Notice needs.
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules f after d; time.AfterFunc is the production choice.
type AfterFunc func(d time.Duration, f func()) Stopper

func realAfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Notice is a single flashing confirmation. A new Flash before the delay
// elapses restarts the timer instead of queueing a second confirmation.
type Notice struct {
	mu      sync.Mutex
	delay   time.Duration
	after   AfterFunc
	visible bool
	gen     uint64
	timer   Stopper
}

// NewNotice builds a notice that hides itself after delay. A nil after uses
// time.AfterFunc.
func NewNotice(delay time.Duration, after AfterFunc) *Notice {
	if after == nil {
		after = realAfterFunc
	}
	return &Notice{delay: delay, after: after}
}

func (n *Notice) Flash() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.visible = true
	n.timer = n.after(n.delay, func() { n.expire(gen) })
}

func (n *Notice) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	// A timer that lost the race with a newer Flash must not hide it.
	if gen != n.gen {
		return
	}
	n.visible = false
	n.timer = nil
}

func (n *Notice) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

// Stop cancels a pending timer and hides the notice.
func (n *Notice) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.visible = false
}
