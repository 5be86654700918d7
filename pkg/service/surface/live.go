package surface

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/domain/types"
	"github.com/secmon-lab/burndown/pkg/utils/async"
)

// MessageType names a websocket message of the widget protocol
type MessageType string

const (
	// server to browser
	MessageDraw     MessageType = "draw"
	MessageUpdate   MessageType = "update"
	MessageStatus   MessageType = "status"
	MessageNavigate MessageType = "navigate"

	// browser to server
	MessageResize MessageType = "resize"
	MessageClick  MessageType = "click"
	MessageMetric MessageType = "metric"
)

// WebSocketMessage is the envelope of every message in both directions
type WebSocketMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NavigatePayload is the payload of a navigate message
type NavigatePayload struct {
	URL string `json:"url"`
}

// ClickPayload is the payload of a click message
type ClickPayload struct {
	Timestamp int64 `json:"timestamp"`
}

// MetricPayload is the payload of a metric message
type MetricPayload struct {
	Metric string `json:"metric"`
}

const (
	writeTimeout   = 10 * time.Second
	maxMessageSize = 64 << 10
)

// EventHandler receives the browser events of a live session
type EventHandler interface {
	Resize(ctx context.Context, vp model.Viewport)
	Activate(ctx context.Context, ts int64) (string, error)
	StartMetric(metric types.Metric) (func(ctx context.Context) error, error)
}

// Live is the surface of an interactive widget in a browser, connected over
// a websocket. Writes from the widget, the debounced redraws and the read
// loop are serialized.
type Live struct {
	conn *websocket.Conn

	writeMu sync.Mutex
	closed  bool
}

var (
	_ interfaces.ChartSurface  = (*Live)(nil)
	_ interfaces.StatusDisplay = (*Live)(nil)
	_ interfaces.Navigator     = (*Live)(nil)
)

// NewLive wraps an upgraded websocket connection
func NewLive(conn *websocket.Conn) *Live {
	conn.SetReadLimit(maxMessageSize)
	return &Live{conn: conn}
}

// Draw implements interfaces.ChartSurface
func (s *Live) Draw(ctx context.Context, chart *model.Chart) error {
	return s.send(MessageDraw, chart)
}

// Update implements interfaces.ChartSurface
func (s *Live) Update(ctx context.Context, chart *model.Chart) error {
	return s.send(MessageUpdate, chart)
}

// ShowStatus implements interfaces.StatusDisplay
func (s *Live) ShowStatus(ctx context.Context, status model.Status) error {
	return s.send(MessageStatus, status)
}

// Navigate implements interfaces.Navigator
func (s *Live) Navigate(ctx context.Context, url string) error {
	return s.send(MessageNavigate, NavigatePayload{URL: url})
}

func (s *Live) send(typ MessageType, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return goerr.Wrap(err, "failed to encode websocket payload", goerr.V("type", typ))
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.closed {
		return goerr.New("websocket session is closed", goerr.V("type", typ))
	}

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return goerr.Wrap(err, "failed to set write deadline")
	}
	if err := s.conn.WriteJSON(WebSocketMessage{Type: typ, Payload: raw}); err != nil {
		return goerr.Wrap(err, "failed to write websocket message", goerr.V("type", typ))
	}
	return nil
}

// Serve reads browser events until the connection closes and hands them to
// handler. Metric changes are started in message order and fetched in the
// background so that resize and click events keep flowing while a request is
// in flight. Messages that do not decode are logged and skipped.
func (s *Live) Serve(ctx context.Context, handler EventHandler) error {
	logger := ctxlog.From(ctx)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || s.isClosed() {
				return nil
			}
			return goerr.Wrap(err, "failed to read websocket message")
		}

		var msg WebSocketMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warn("malformed websocket message", "error", err, "size", len(data))
			continue
		}

		if err := s.dispatch(ctx, handler, msg); err != nil {
			logger.Warn("invalid websocket message", "error", err, "type", msg.Type)
		}
	}
}

func (s *Live) dispatch(ctx context.Context, handler EventHandler, msg WebSocketMessage) error {
	switch msg.Type {
	case MessageResize:
		var vp model.Viewport
		if err := json.Unmarshal(msg.Payload, &vp); err != nil {
			return goerr.Wrap(err, "invalid resize payload")
		}
		handler.Resize(ctx, vp)

	case MessageClick:
		var click ClickPayload
		if err := json.Unmarshal(msg.Payload, &click); err != nil {
			return goerr.Wrap(err, "invalid click payload")
		}
		if _, err := handler.Activate(ctx, click.Timestamp); err != nil {
			ctxlog.From(ctx).Debug("click ignored", "error", err)
		}

	case MessageMetric:
		var m MetricPayload
		if err := json.Unmarshal(msg.Payload, &m); err != nil {
			return goerr.Wrap(err, "invalid metric payload")
		}
		metric, err := types.ParseMetric(m.Metric)
		if err != nil {
			return err
		}
		reload, err := handler.StartMetric(metric)
		if err != nil {
			return err
		}
		async.Dispatch(ctx, reload)

	default:
		return goerr.New("unknown message type", goerr.V("type", msg.Type))
	}
	return nil
}

func (s *Live) isClosed() bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.closed
}

// Close sends a close frame and closes the connection
func (s *Live) Close() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))

	if err := s.conn.Close(); err != nil {
		return goerr.Wrap(err, "failed to close websocket")
	}
	return nil
}
