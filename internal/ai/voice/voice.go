// ABOUTME: Realtime voice support session: full-duplex capture upstream, speech downstream
// ABOUTME: Barge-in flushes scheduled playback; Close releases every held resource exactly once
package voice

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/anchorup/anchor/internal/audio"
)

// EventType discriminates messages arriving from the remote voice
// endpoint.
type EventType string

const (
	// EventAudio carries a base64 PCM16 chunk of model speech.
	EventAudio EventType = "audio"
	// EventTranscript carries a text fragment of what was said.
	EventTranscript EventType = "transcript"
	// EventInterrupted signals the user talked over the model; all
	// scheduled speech is now stale.
	EventInterrupted EventType = "interrupted"
	// EventClosed signals the remote endpoint ended the session.
	EventClosed EventType = "closed"
)

// Event is one message from the remote endpoint.
type Event struct {
	Type       EventType
	Audio      string
	Transcript string
}

// Transport is the duplex link to the remote voice endpoint. The
// session owns it once started and closes it on teardown.
type Transport interface {
	Send(chunk audio.Chunk) error
	Events() <-chan Event
	Close() error
}

// Capture is the microphone source. Its channel closes when the device
// stops; Close releases the device.
type Capture interface {
	Chunks() <-chan []float32
	Close() error
}

// Session is one live voice conversation. It pumps microphone chunks
// upstream and schedules returned speech for gapless playback until
// either side hangs up.
type Session struct {
	transport Transport
	capture   Capture
	sched     *audio.Scheduler
	logger    *slog.Logger

	transcripts chan string
	stop        chan struct{}
	done        chan struct{}
	closeOnce   sync.Once
	wg          sync.WaitGroup
}

// Start wires a capture device and an open transport into a running
// session. On any device or transport failure the session tears itself
// down; callers observe the end through Done.
func Start(transport Transport, capture Capture, sink audio.Sink, clock audio.Clock, logger *slog.Logger) *Session {
	s := &Session{
		transport:   transport,
		capture:     capture,
		sched:       audio.NewScheduler(sink, clock),
		logger:      logger,
		transcripts: make(chan string, 16),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	s.wg.Add(2)
	go s.pumpCapture()
	go s.pumpEvents()
	return s
}

// Transcripts streams text fragments of the conversation as they
// arrive. The channel closes when the session ends.
func (s *Session) Transcripts() <-chan string {
	return s.transcripts
}

// Done closes when the session has fully torn down.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close ends the session and releases the capture device, all
// scheduled playback, and the remote connection. Safe to call more
// than once; every exit path funnels through it. The pumps are stopped
// and drained before the flush so no buffer can be scheduled after it.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()

		if cerr := s.capture.Close(); cerr != nil {
			err = fmt.Errorf("closing capture: %w", cerr)
		}
		s.sched.Flush()
		if terr := s.transport.Close(); terr != nil && err == nil {
			err = fmt.Errorf("closing transport: %w", terr)
		}
		close(s.done)
	})
	return err
}

// pumpCapture forwards microphone chunks upstream until the device
// stops or the session closes.
func (s *Session) pumpCapture() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stop:
			return
		case samples, ok := <-s.capture.Chunks():
			if !ok {
				// Device gone; end the whole session, not just the uplink
				go s.Close()
				return
			}
			if err := s.transport.Send(audio.EncodeCapture(samples)); err != nil {
				s.logger.Warn("voice uplink send failed", "error", err)
				go s.Close()
				return
			}
		}
	}
}

// pumpEvents schedules returned speech and reacts to interruptions
// until the remote endpoint closes.
func (s *Session) pumpEvents() {
	defer s.wg.Done()
	defer close(s.transcripts)

	for {
		select {
		case <-s.stop:
			return
		case ev, ok := <-s.transport.Events():
			if !ok {
				go s.Close()
				return
			}
			switch ev.Type {
			case EventAudio:
				samples, err := audio.DecodePlayback(ev.Audio)
				if err != nil {
					s.logger.Warn("dropping undecodable audio chunk", "error", err)
					continue
				}
				s.sched.Schedule(samples, audio.PlaybackSampleRate)
			case EventTranscript:
				select {
				case s.transcripts <- ev.Transcript:
				default:
					// Slow consumer; transcripts are advisory, drop
				}
			case EventInterrupted:
				s.sched.Flush()
			case EventClosed:
				go s.Close()
				return
			}
		}
	}
}
