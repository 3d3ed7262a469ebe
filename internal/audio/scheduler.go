// ABOUTME: Gapless playback scheduler for streamed model speech
// ABOUTME: Keeps a running next-start cursor; barge-in flushes everything scheduled
package audio

import (
	"sync"
)

// Sink plays one buffer of samples starting at the given timeline
// offset, in seconds. Implementations own the actual output device.
type Sink interface {
	Play(samples []float32, startAt float64) (stop func())
}

// Clock reports the current position on the playback timeline, in
// seconds. The output device's clock satisfies this in production.
type Clock interface {
	Now() float64
}

// Scheduler turns a stream of decoded audio buffers into gapless
// playback. Each buffer is scheduled at a running cursor that starts at
// the later of the previous end time and the current clock, so chunks
// arriving faster than realtime queue up back to back instead of
// overlapping.
type Scheduler struct {
	sink  Sink
	clock Clock

	mu      sync.Mutex
	cursor  float64
	pending []func()
}

// NewScheduler builds a scheduler over the given output sink and clock.
func NewScheduler(sink Sink, clock Clock) *Scheduler {
	return &Scheduler{sink: sink, clock: clock}
}

// Schedule queues samples for gapless playback and returns the timeline
// offset they will start at.
func (s *Scheduler) Schedule(samples []float32, sampleRate int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now := s.clock.Now(); now > s.cursor {
		s.cursor = now
	}

	startAt := s.cursor
	stop := s.sink.Play(samples, startAt)
	s.pending = append(s.pending, stop)
	s.cursor += Duration(len(samples), sampleRate)
	return startAt
}

// Flush stops every scheduled buffer and resets the cursor. Called on
// barge-in: when the user talks over the model, stale speech must never
// play after the interruption.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.cursor = 0
	s.mu.Unlock()

	for _, stop := range pending {
		stop()
	}
}

// Pending reports how many buffers are currently scheduled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
