package remote

import (
	"sync"

	"github.com/pion/logging"

	"github.com/phanxgames/touchinput"
)

// DefaultMaxQueue bounds the number of samples a Receiver buffers between
// frames.
const DefaultMaxQueue = 1024

// Receiver buffers samples arriving from network goroutines and hands them
// to a TouchInput once per frame. It implements touchinput.Source and is
// safe for concurrent use.
type Receiver struct {
	// Base is added to every incoming pointer id, so remote pointers can be
	// kept apart from local ones.
	Base int
	// MaxQueue is the buffer limit; samples beyond it are dropped.
	MaxQueue int

	mu      sync.Mutex
	queue   []touchinput.PointerSample
	dropped int

	log logging.LeveledLogger
}

// NewReceiver creates a receiver. A nil logger selects pion's default
// logger with scope "remote".
func NewReceiver(log logging.LeveledLogger) *Receiver {
	if log == nil {
		log = logging.NewDefaultLoggerFactory().NewLogger("remote")
	}
	return &Receiver{MaxQueue: DefaultMaxQueue, log: log}
}

// Push queues samples for the next frame.
func (r *Receiver) Push(samples ...touchinput.PointerSample) {
	r.push(samples, false)
}

// push queues samples; force skips the MaxQueue limit.
func (r *Receiver) push(samples []touchinput.PointerSample, force bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	limit := r.MaxQueue
	if limit <= 0 {
		limit = DefaultMaxQueue
	}
	for _, s := range samples {
		if !force && len(r.queue) >= limit {
			r.dropped++
			continue
		}
		s.ID += r.Base
		r.queue = append(r.queue, s)
	}
}

// tracks reports whether a peer pointer id maps onto a pointer the core
// accepts.
func (r *Receiver) tracks(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	id += r.Base
	return id >= 0 && id < touchinput.MaxPointers
}

// HandleMessage decodes a wire payload and queues its samples.
func (r *Receiver) HandleMessage(data []byte) error {
	msgs, err := Decode(data)
	if err != nil {
		return err
	}
	samples := make([]touchinput.PointerSample, len(msgs))
	for i, m := range msgs {
		samples[i] = m.Sample()
	}
	r.Push(samples...)
	return nil
}

// Dropped returns how many samples were discarded because the queue was full.
func (r *Receiver) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Pending returns the number of queued samples.
func (r *Receiver) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// AppendSamples drains the queue. It implements touchinput.Source.
func (r *Receiver) AppendSamples(dst []touchinput.PointerSample) []touchinput.PointerSample {
	r.mu.Lock()
	defer r.mu.Unlock()
	dst = append(dst, r.queue...)
	r.queue = r.queue[:0]
	return dst
}

// session tracks which pointers one peer holds down, so they can be
// canceled when the peer goes away.
type session struct {
	recv *Receiver

	mu     sync.Mutex
	down   map[int]touchinput.Vec3
	closed bool
}

func newSession(recv *Receiver) *session {
	return &session{recv: recv, down: make(map[int]touchinput.Vec3)}
}

func (s *session) handle(data []byte) error {
	msgs, err := Decode(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	samples := make([]touchinput.PointerSample, len(msgs))
	for i, m := range msgs {
		sm := m.Sample()
		samples[i] = sm
		if !s.recv.tracks(sm.ID) {
			continue
		}
		switch sm.Phase {
		case touchinput.PhaseEnded, touchinput.PhaseCanceled:
			delete(s.down, sm.ID)
		default:
			s.down[sm.ID] = sm.Position
		}
	}
	s.recv.Push(samples...)
	return nil
}

// close cancels every pointer the peer still holds. Later messages are
// ignored.
func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	// Cancels bypass MaxQueue: a lost cancel would leave the pointer owned.
	cancels := make([]touchinput.PointerSample, 0, len(s.down))
	for id, pos := range s.down {
		cancels = append(cancels, touchinput.PointerSample{ID: id, Position: pos, Phase: touchinput.PhaseCanceled})
	}
	s.recv.push(cancels, true)
	if len(s.down) > 0 {
		s.recv.log.Infof("peer left with %d pointer(s) down; canceled", len(s.down))
	}
	s.down = nil
}
