package orchestrator

import (
	"sync"

	"github.com/stockbuddy/stockbuddy/pkg/events"
)

// streamBufferSize bounds the producer→consumer queue. The consumer
// paces the producer; the buffer only absorbs bursts.
const streamBufferSize = 256

// Stream is the consumer's view of one session: a bounded event queue
// fed by a detached producer. Closing the stream detaches the consumer;
// the producer keeps running and its forwards become no-ops while
// persistence continues.
type Stream struct {
	ch     chan *events.Response
	closed chan struct{}
	once   sync.Once

	mu       sync.RWMutex
	finished bool
}

func newStream() *Stream {
	return &Stream{
		ch:     make(chan *events.Response, streamBufferSize),
		closed: make(chan struct{}),
	}
}

// Events yields session events in emission order. The channel is closed
// when the session's foreground work ends.
func (s *Stream) Events() <-chan *events.Response { return s.ch }

// Close detaches the consumer. Safe to call more than once.
func (s *Stream) Close() { s.once.Do(func() { close(s.closed) }) }

// send forwards a response unless the consumer is gone or the stream
// already finished. Late sends from a producer that outlived the
// session are no-ops.
func (s *Stream) send(resp *events.Response) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.finished {
		return
	}
	select {
	case <-s.closed:
		return
	default:
	}
	select {
	case s.ch <- resp:
	case <-s.closed:
	}
}

// finish ends the event channel. Called by the producer after its last
// foreground send; waits out any in-flight send.
func (s *Stream) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}
	s.finished = true
	close(s.ch)
}
