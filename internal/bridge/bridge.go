package bridge

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tabnote/tabnote/internal/background"
)

// Inbound event tags sent by the extension service worker.
const (
	eventInstalled  = "installed"
	eventNavigation = "navigation"
	eventMessage    = "message"
)

// inboundEnvelope is a single frame from the extension. The event tag
// selects which of the payload fields are meaningful.
type inboundEnvelope struct {
	Event   string              `json:"event"`
	ID      uint64              `json:"id,omitempty"`
	Reason  string              `json:"reason,omitempty"`
	TabID   int                 `json:"tabId,omitempty"`
	Status  string              `json:"status,omitempty"`
	URL     string              `json:"url,omitempty"`
	Message *background.Message `json:"message,omitempty"`
}

// hostOp is an outbound request for a host operation the extension
// performs on the agent's behalf.
type hostOp struct {
	Op    string   `json:"op"`
	URL   string   `json:"url,omitempty"`
	TabID int      `json:"tabId,omitempty"`
	Files []string `json:"files,omitempty"`
}

// response answers an inbound message frame. A message yielding no payload
// gets no response frame at all.
type response struct {
	Event   string `json:"event"`
	ID      uint64 `json:"id"`
	Payload any    `json:"payload"`
}

// Bridge pumps extension events into the background worker and carries
// host operations back. Outbound frames are serialized by a mutex; inbound
// frames are handled one at a time in arrival order.
type Bridge struct {
	in     io.Reader
	out    io.Writer
	mu     sync.Mutex
	worker *background.Worker
}

// New creates a bridge on the given streams. Attach the worker before Run.
func New(in io.Reader, out io.Writer) *Bridge {
	return &Bridge{in: in, out: out}
}

// Attach binds the worker the inbound events are dispatched to. The worker
// in turn needs the bridge as its host, hence the two-step wiring.
func (b *Bridge) Attach(worker *background.Worker) {
	b.worker = worker
}

// Run reads frames until the extension closes the pipe. A malformed frame
// body is dropped and logged; a broken length prefix ends the loop since
// there is no way to resynchronize the stream.
func (b *Bridge) Run() error {
	if b.worker == nil {
		return errors.New("bridge has no worker attached")
	}

	for {
		frame, err := readFrame(b.in)
		if errors.Is(err, io.EOF) {
			log.Info().Msg("bridge closed by extension")

			return nil
		}

		if err != nil {
			return err
		}

		b.dispatch(frame)
	}
}

func (b *Bridge) dispatch(frame []byte) {
	var env inboundEnvelope
	if err := json.Unmarshal(frame, &env); err != nil {
		log.Warn().Err(err).Msg("dropping malformed bridge frame")

		return
	}

	switch env.Event {
	case eventInstalled:
		b.worker.HandleInstalled(background.InstallEvent{Reason: env.Reason})
	case eventNavigation:
		b.worker.HandleNavigation(background.NavigationEvent{
			TabID:  env.TabID,
			Status: env.Status,
			URL:    env.URL,
		})
	case eventMessage:
		var msg background.Message
		if env.Message != nil {
			msg = *env.Message
		}

		payload := b.worker.HandleMessage(msg)
		if payload == nil {
			// intentional no-op: the reply channel closes without data
			return
		}

		if err := b.send(response{Event: "response", ID: env.ID, Payload: payload}); err != nil {
			log.Error().Err(err).Uint64("id", env.ID).Msg("failed to send bridge response")
		}
	default:
		log.Warn().Str("event", env.Event).Msg("dropping unknown bridge event")
	}
}

func (b *Bridge) send(payload any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return writeFrame(b.out, payload)
}

// OpenTab implements background.TabOpener over the bridge.
func (b *Bridge) OpenTab(url string) error {
	return b.send(hostOp{Op: "openTab", URL: url})
}

// InjectScript implements background.ScriptInjector over the bridge.
func (b *Bridge) InjectScript(tabID int, files []string) error {
	return b.send(hostOp{Op: "injectScript", TabID: tabID, Files: files})
}
