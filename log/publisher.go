package log

import (
	"bytes"
	"sync"
	"sync/atomic"
)

const defaultBufferSize = 16

// Publisher is an [io.Writer] that splits written bytes into lines and fans
// each line out to subscribers.
//
// A line is delivered once its terminating newline has been written; empty
// lines are skipped and a trailing "\r" is removed. Each [Subscription]
// receives lines through a buffered channel with ring-buffer semantics: when
// the channel is full the oldest line is dropped, so Write never blocks.
// Safe for concurrent use.
//
// Create instances with [NewPublisher].
type Publisher struct {
	subscribers []*Subscription
	partial     []byte
	bufSize     int
	mu          sync.Mutex
	closed      bool
}

// NewPublisher creates a [Publisher] with the given options.
// The default buffer size is 16 lines.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBufferSize sets the channel buffer size, in lines, for new
// subscriptions. Values less than 1 are clamped to 1.
func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		p.bufSize = max(n, 1)
	}
}

// Write appends b to the pending output and delivers every completed line.
// Write always returns len(b), nil.
func (p *Publisher) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return len(b), nil
	}

	p.partial = append(p.partial, b...)

	for {
		i := bytes.IndexByte(p.partial, '\n')
		if i < 0 {
			break
		}

		p.publish(p.partial[:i])
		p.partial = p.partial[i+1:]
	}

	// Release the consumed prefix.
	p.partial = bytes.Clone(p.partial)

	return len(b), nil
}

// Subscribe creates and registers a new [Subscription]. If the Publisher is
// already closed the returned subscription's channel is immediately closed.
func (p *Publisher) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		ch: make(chan string, p.bufSize),
	}

	if p.closed {
		close(sub.ch)

		return sub
	}

	p.subscribers = append(p.subscribers, sub)

	return sub
}

// Close delivers any unterminated final line, closes all subscription
// channels and releases the subscriber list. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.publish(p.partial)
	p.partial = nil
	p.closed = true

	for _, sub := range p.subscribers {
		close(sub.ch)
	}

	p.subscribers = nil

	return nil
}

// publish sends one line to every live subscriber and compacts closed
// subscriptions out of the list. The caller must hold p.mu.
func (p *Publisher) publish(raw []byte) {
	line := string(bytes.TrimSuffix(raw, []byte("\r")))
	if line == "" {
		return
	}

	alive := p.subscribers[:0]
	for _, sub := range p.subscribers {
		if sub.closed.Load() {
			close(sub.ch)

			continue
		}

		// Ring-buffer: drop oldest if full. The subscriber may drain the
		// channel concurrently, so neither step blocks.
		select {
		case sub.ch <- line:
		default:
			select {
			case <-sub.ch:
			default:
			}

			select {
			case sub.ch <- line:
			default:
			}
		}

		alive = append(alive, sub)
	}

	clear(p.subscribers[len(alive):])
	p.subscribers = alive
}

// Subscription receives log lines from a [Publisher].
type Subscription struct {
	ch     chan string
	closed atomic.Bool
}

// C returns the read-only channel that delivers log lines.
func (s *Subscription) C() <-chan string {
	return s.ch
}

// Close marks the subscription as closed. The Publisher will close the
// underlying channel the next time it delivers a line or is closed.
// Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}
