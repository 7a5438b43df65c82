package gallery

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/internal/stories"
	"github.com/vango-dev/vangoui/pkg/middleware"
	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/sched"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

const (
	maxFrameSize = 4096
	writeWait    = 10 * time.Second
)

// EventFrame is sent by the client when a hydrated element fires an event.
type EventFrame struct {
	HID   string `json:"hid"`
	Event string `json:"event"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Ctrl  bool   `json:"ctrl,omitempty"`
	Shift bool   `json:"shift,omitempty"`
	Alt   bool   `json:"alt,omitempty"`
	Meta  bool   `json:"meta,omitempty"`
}

func (f EventFrame) event() vdom.Event {
	return vdom.Event{
		Type:  f.Event,
		Value: f.Value,
		Key: vdom.KeyboardEvent{
			Key:      f.Key,
			CtrlKey:  f.Ctrl,
			ShiftKey: f.Shift,
			AltKey:   f.Alt,
			MetaKey:  f.Meta,
		},
	}
}

// FrameType identifies a server frame.
type FrameType string

const (
	FrameHTML  FrameType = "html"
	FrameError FrameType = "error"
)

// Frame is pushed to the client.
type Frame struct {
	Type  FrameType `json:"type"`
	HTML  string    `json:"html,omitempty"`
	Error string    `json:"error,omitempty"`
}

// liveSession owns one story instance for one connection. Everything that
// touches the instance, the handler table or the connection's writer runs
// on loop.
type liveSession struct {
	srv   *Server
	story *stories.Story
	conn  *websocket.Conn
	loop  *sched.Loop

	inst     *stories.Instance
	handlers map[string]any

	// dirty is set by controller changes outside an event and cleared by
	// the next push.
	dirty bool
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	story, err := s.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.metrics.RecordWebSocketError("upgrade")
		s.logger.Warn("live upgrade failed", "story", story.ID,
			"error", errors.New("E121").Wrap(err))
		return
	}
	conn.SetReadLimit(maxFrameSize)

	sess := &liveSession{
		srv:   s,
		story: story,
		conn:  conn,
		loop:  sched.NewLoop(s.logger),
	}
	if !sess.start() {
		sess.loop.Close()
		conn.Close()
		return
	}

	s.live.Add(1)
	s.metrics.RecordSessionStart()
	s.logger.Debug("live session started", "story", story.ID, "remote", r.RemoteAddr)

	// Hijacked connections outlive http.Server.Shutdown; close them when
	// the server context ends.
	ctx, cancel := context.WithCancel(r.Context())
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	sess.readLoop(ctx)

	cancel()
	sess.close()
	s.live.Add(-1)
	s.metrics.RecordSessionEnd()
	s.logger.Debug("live session ended", "story", story.ID)
}

// start builds the instance on the loop and pushes the first frame.
func (ls *liveSession) start() bool {
	var err error
	ran := ls.loop.Do(func() {
		ls.inst, err = stories.Build(ls.story, sched.Real(ls.loop),
			stories.WithToasterOptions(ls.srv.cfg.ToasterOptions()...),
			stories.OnChange(ls.changed),
			stories.WithLogger(ls.srv.logger.With("story", ls.story.ID)),
		)
		if err == nil {
			err = ls.push()
		}
	})
	if !ran || err != nil {
		ls.srv.logger.Error("live session failed to start", "story", ls.story.ID, "error", err)
		return false
	}
	return true
}

func (ls *liveSession) readLoop(ctx context.Context) {
	for {
		_, data, err := ls.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && ctx.Err() == nil {
				ls.srv.metrics.RecordWebSocketError("read")
				ls.srv.logger.Debug("live read failed", "story", ls.story.ID, "error", err)
			}
			return
		}

		var f EventFrame
		if err := json.Unmarshal(data, &f); err != nil || f.HID == "" || f.Event == "" {
			ls.srv.metrics.RecordLiveEvent("invalid", 0, errors.New("E122"))
			ls.loop.Dispatch(func() { ls.sendError(errors.New("E122").Error()) })
			continue
		}
		ls.loop.Dispatch(func() { ls.handle(ctx, f) })
	}
}

// handle runs on the loop.
func (ls *liveSession) handle(ctx context.Context, f EventFrame) {
	start := time.Now()
	_, span := middleware.StartEventSpan(ctx, ls.story.ID, f.Event, f.HID)

	err := ls.dispatch(f)
	if err == nil {
		err = ls.push()
	} else {
		ls.sendError(err.Error())
	}

	middleware.EndEventSpan(span, err)
	ls.srv.metrics.RecordLiveEvent(f.Event, time.Since(start), err)
}

func (ls *liveSession) dispatch(f EventFrame) error {
	h, ok := ls.handlers[f.HID+"_on"+f.Event]
	if !ok {
		return errors.New("E123").WithDetail("no handler for " + f.HID + " " + f.Event)
	}
	return vdom.Invoke(h, f.event())
}

// changed runs on the loop when a timer changes a controller. Pushes are
// coalesced so that a burst of changes sends one frame.
func (ls *liveSession) changed() {
	if ls.dirty {
		return
	}
	ls.dirty = true
	ls.loop.Dispatch(func() {
		if ls.dirty {
			ls.push()
		}
	})
}

// push renders the instance and writes an html frame. It runs on the loop.
func (ls *liveSession) push() error {
	ls.dirty = false
	if ls.inst == nil {
		return nil
	}

	r := render.NewRenderer(render.RendererConfig{Hydrate: true})
	html, err := r.RenderToString(ls.inst.Render())
	if err != nil {
		return errors.New("E124").WithDetail("story " + ls.story.ID).Wrap(err)
	}
	ls.handlers = r.Handlers()

	if err := ls.write(Frame{Type: FrameHTML, HTML: html}); err != nil {
		return err
	}
	ls.srv.metrics.RecordPush()
	return nil
}

func (ls *liveSession) sendError(msg string) {
	ls.write(Frame{Type: FrameError, Error: msg})
}

func (ls *liveSession) write(f Frame) error {
	ls.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ls.conn.WriteJSON(f); err != nil {
		ls.srv.metrics.RecordWebSocketError("write")
		ls.conn.Close()
		return err
	}
	return nil
}

// close tears the instance down on the loop, then stops the loop.
func (ls *liveSession) close() {
	ls.loop.Do(func() {
		if ls.inst != nil {
			ls.inst.Teardown()
		}
		ls.handlers = nil
	})
	ls.loop.Close()
	ls.conn.Close()
}
