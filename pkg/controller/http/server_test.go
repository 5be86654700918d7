package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/m-mizutani/gt"
	ctrlhttp "github.com/secmon-lab/burndown/pkg/controller/http"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces"
	"github.com/secmon-lab/burndown/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/burndown/pkg/domain/model"
	"github.com/secmon-lab/burndown/pkg/domain/types"
	"github.com/secmon-lab/burndown/pkg/repository"
	"github.com/secmon-lab/burndown/pkg/service/surface"
	"github.com/secmon-lab/burndown/pkg/usecase"
)

const tracURL = "https://trac.example.com"

// testPayload builds a milestone starting 2013-07-01 with one point per day
func testPayload(days int) *model.BurndownPayload {
	start := time.Date(2013, time.July, 1, 0, 0, 0, 0, time.UTC)

	p := &model.BurndownPayload{
		Result:          true,
		StartDate:       start.Format(model.DateLayout),
		EndDate:         start.AddDate(0, 0, days-1).Format(model.DateLayout),
		EffortUnits:     "hours",
		MilestoneName:   "milestone1",
		TimelineURLBase: "/timeline?milestone=milestone1&daysback=0",
	}
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(model.DateLayout)
		p.IdealCurveData.Entries = append(p.IdealCurveData.Entries, model.RawEntry{Date: date, Value: float64(days - i)})
		p.BurndownData.Entries = append(p.BurndownData.Entries, model.RawEntry{Date: date, Value: float64(days - i + 1)})
		p.TeamEffortData.Entries = append(p.TeamEffortData.Entries, model.RawEntry{Date: date, Value: float64(i)})
	}
	return p
}

func newServer(t *testing.T, result model.FetchResult) (*ctrlhttp.Server, *mocks.FetcherMock, interfaces.SessionRegistry) {
	t.Helper()

	fetcher := &mocks.FetcherMock{
		FetchFunc: func(ctx context.Context, req model.FetchRequest) model.FetchResult {
			return result
		},
	}
	sessions := repository.NewMemory()

	server, err := ctrlhttp.NewServer(context.Background(), ":0", fetcher, usecase.NewRenderer(nil), sessions,
		ctrlhttp.WithServerLocation(time.UTC),
		ctrlhttp.WithServerResizeDelay(10*time.Millisecond),
		ctrlhttp.WithTracURL(tracURL),
	)
	gt.NoError(t, err).Required()
	return server, fetcher, sessions
}

func serve(server *ctrlhttp.Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	server.Server.Handler.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	server, _, _ := newServer(t, model.NoDataResult())

	w := serve(server, http.MethodGet, "/health")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]any
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	gt.Equal(t, body["status"], "healthy")
	gt.Equal(t, body["service"], "burndown")
	gt.Equal(t, body["sessions"], float64(0))
}

func TestWidgetPage(t *testing.T) {
	server, fetcher, _ := newServer(t, model.PayloadResult(testPayload(10)))

	t.Run("interactive page loads the widget script", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/milestone/milestone1")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Content-Type"), "text/html; charset=utf-8")

		body := w.Body.String()
		gt.S(t, body).Contains("burndown-interactive")
		gt.S(t, body).Contains("/assets/burndown.js")
		gt.S(t, body).Contains("window.burndownConfig")
		gt.S(t, body).Contains("wsURL")
		gt.S(t, body).NotContains("burndown-image")
	})

	t.Run("print page embeds the image", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/milestone/milestone1?print=true&metric=hours")
		gt.Equal(t, w.Code, http.StatusOK)

		body := w.Body.String()
		gt.S(t, body).Contains("burndown-print")
		gt.S(t, body).Contains("/milestone/milestone1/burndown.png?metric=hours")
		gt.S(t, body).NotContains("/assets/burndown.js")
	})

	t.Run("not renderable page draws nothing", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/milestone/milestone1?renderable=false&print=true")
		gt.Equal(t, w.Code, http.StatusOK)

		body := w.Body.String()
		gt.S(t, body).Contains("burndown-not-renderable")
		gt.S(t, body).NotContains("burndown.png")
		gt.S(t, body).NotContains("/assets/burndown.js")
	})

	t.Run("bad flags are rejected", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/milestone/milestone1?print=maybe")
		gt.Equal(t, w.Code, http.StatusBadRequest)

		w = serve(server, http.MethodGet, "/milestone/milestone1?metric=weeks")
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("page does not fetch", func(t *testing.T) {
		gt.Equal(t, len(fetcher.FetchCalls()), 0)
	})
}

func TestBurndownImage(t *testing.T) {
	t.Run("png chart", func(t *testing.T) {
		server, fetcher, _ := newServer(t, model.PayloadResult(testPayload(10)))

		w := serve(server, http.MethodGet, "/milestone/milestone1/burndown.png?metric=points&approx_start_date=2013-07-01")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Content-Type"), "image/png")
		gt.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

		calls := fetcher.FetchCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].Req.MilestoneID, types.MilestoneID("milestone1"))
		gt.Equal(t, calls[0].Req.Metric, types.MetricPoints)
		gt.Equal(t, calls[0].Req.ApproxStartDate, "2013-07-01")
	})

	t.Run("svg chart", func(t *testing.T) {
		server, _, _ := newServer(t, model.PayloadResult(testPayload(10)))

		w := serve(server, http.MethodGet, "/milestone/milestone1/burndown.svg")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Content-Type"), "image/svg+xml")
		gt.S(t, w.Body.String()).Contains("<svg")
	})

	t.Run("no data", func(t *testing.T) {
		server, _, _ := newServer(t, model.NoDataResult())

		w := serve(server, http.MethodGet, "/milestone/milestone1/burndown.png")
		gt.Equal(t, w.Code, http.StatusNotFound)
		gt.S(t, w.Body.String()).Contains("no burndown data")
	})

	t.Run("upstream failure", func(t *testing.T) {
		server, _, _ := newServer(t, model.TransportFailure(errors.New("connection refused")))

		w := serve(server, http.MethodGet, "/milestone/milestone1/burndown.png")
		gt.Equal(t, w.Code, http.StatusBadGateway)
		gt.S(t, w.Body.String()).Contains("Failed to retrieve burndown data")
	})

	t.Run("unknown format", func(t *testing.T) {
		server, fetcher, _ := newServer(t, model.PayloadResult(testPayload(10)))

		w := serve(server, http.MethodGet, "/milestone/milestone1/burndown.gif")
		gt.Equal(t, w.Code, http.StatusNotFound)
		gt.Equal(t, len(fetcher.FetchCalls()), 0)
	})
}

func TestNavigate(t *testing.T) {
	ts, err := model.DateToTimestamp("2013-07-05", time.UTC)
	gt.NoError(t, err).Required()

	t.Run("redirects to the timeline of the day", func(t *testing.T) {
		server, _, _ := newServer(t, model.PayloadResult(testPayload(10)))

		w := serve(server, http.MethodGet, "/milestone/milestone1/navigate?ts="+itoa(ts))
		gt.Equal(t, w.Code, http.StatusFound)
		gt.Equal(t, w.Header().Get("Location"),
			"https://trac.example.com/timeline?milestone=milestone1&daysback=0&from=2013-07-05")
	})

	t.Run("invalid timestamp", func(t *testing.T) {
		server, _, _ := newServer(t, model.PayloadResult(testPayload(10)))

		w := serve(server, http.MethodGet, "/milestone/milestone1/navigate?ts=yesterday")
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("no data", func(t *testing.T) {
		server, _, _ := newServer(t, model.NoDataResult())

		w := serve(server, http.MethodGet, "/milestone/milestone1/navigate?ts="+itoa(ts))
		gt.Equal(t, w.Code, http.StatusNotFound)
	})
}

func TestAssets(t *testing.T) {
	server, _, _ := newServer(t, model.NoDataResult())

	t.Run("script", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/assets/burndown.js")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Content-Type"), "application/javascript; charset=utf-8")
		gt.S(t, w.Body.String()).Contains("burndownConfig")
	})

	t.Run("stylesheet", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/assets/burndown.css")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, w.Header().Get("Content-Type"), "text/css; charset=utf-8")
	})

	t.Run("page template is not an asset", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/assets/index.html")
		gt.Equal(t, w.Code, http.StatusNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/assets/missing.js")
		gt.Equal(t, w.Code, http.StatusNotFound)
	})
}

func readMessage(t *testing.T, conn *websocket.Conn) surface.WebSocketMessage {
	t.Helper()
	gt.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg surface.WebSocketMessage
	gt.NoError(t, conn.ReadJSON(&msg)).Required()
	return msg
}

func TestLiveSession(t *testing.T) {
	server, fetcher, sessions := newServer(t, model.PayloadResult(testPayload(10)))
	srv := httptest.NewServer(server.Server.Handler)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/milestone/milestone1/ws?metric=hours&width=800&height=400"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	gt.NoError(t, err).Required()
	defer conn.Close()
	gt.Equal(t, resp.StatusCode, http.StatusSwitchingProtocols)

	t.Run("draws the chart", func(t *testing.T) {
		msg := readMessage(t, conn)
		gt.Equal(t, msg.Type, surface.MessageDraw)

		var chart model.Chart
		gt.NoError(t, json.Unmarshal(msg.Payload, &chart))
		gt.Equal(t, chart.MilestoneID, types.MilestoneID("milestone1"))
		gt.Equal(t, chart.Mode, model.RenderModeInteractive)
		gt.Equal(t, chart.Width, 800)
		gt.Equal(t, chart.Height, 400)

		calls := fetcher.FetchCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].Req.Metric, types.MetricHours)
		gt.Equal(t, sessions.Count(), 1)
	})

	t.Run("click navigates to the absolute timeline link", func(t *testing.T) {
		ts, err := model.DateToTimestamp("2013-07-05", time.UTC)
		gt.NoError(t, err).Required()
		gt.NoError(t, conn.WriteJSON(map[string]any{
			"type":    "click",
			"payload": map[string]any{"timestamp": ts},
		}))

		msg := readMessage(t, conn)
		gt.Equal(t, msg.Type, surface.MessageNavigate)
		var nav surface.NavigatePayload
		gt.NoError(t, json.Unmarshal(msg.Payload, &nav))
		gt.Equal(t, nav.URL, "https://trac.example.com/timeline?milestone=milestone1&daysback=0&from=2013-07-05")
	})

	t.Run("resize redraws without animation", func(t *testing.T) {
		gt.NoError(t, conn.WriteJSON(map[string]any{
			"type":    "resize",
			"payload": map[string]any{"width": 600, "height": 300},
		}))

		msg := readMessage(t, conn)
		gt.Equal(t, msg.Type, surface.MessageUpdate)
		var chart model.Chart
		gt.NoError(t, json.Unmarshal(msg.Payload, &chart))
		gt.False(t, chart.Animate)
		gt.Equal(t, chart.Width, 600)
		gt.Equal(t, chart.Height, 300)
	})

	t.Run("closing the browser ends the session", func(t *testing.T) {
		gt.NoError(t, conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

		deadline := time.Now().Add(5 * time.Second)
		for sessions.Count() > 0 && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		gt.Equal(t, sessions.Count(), 0)
	})
}

func TestLiveSessionMetricChanges(t *testing.T) {
	server, fetcher, _ := newServer(t, model.FetchResult{})
	fetcher.FetchFunc = func(ctx context.Context, req model.FetchRequest) model.FetchResult {
		if req.Metric == types.MetricHours {
			time.Sleep(100 * time.Millisecond)
		}
		p := testPayload(10)
		p.EffortUnits = string(req.Metric)
		return model.PayloadResult(p)
	}
	srv := httptest.NewServer(server.Server.Handler)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/milestone/milestone1/ws?metric=story_points"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	gt.NoError(t, err).Required()
	defer conn.Close()

	gt.Equal(t, readMessage(t, conn).Type, surface.MessageDraw)

	// wrong shape is skipped without ending the session
	gt.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":1}`)))
	for _, metric := range []string{"hours", "tickets"} {
		gt.NoError(t, conn.WriteJSON(map[string]any{
			"type":    "metric",
			"payload": map[string]any{"metric": metric},
		}))
	}

	msg := readMessage(t, conn)
	gt.Equal(t, msg.Type, surface.MessageDraw)
	var chart model.Chart
	gt.NoError(t, json.Unmarshal(msg.Payload, &chart))
	gt.Equal(t, chart.YAxis.Label, "Effort (tickets)")

	// the slower hours response belongs to a superseded request
	gt.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, data, err := conn.ReadMessage()
	gt.Error(t, err)
	gt.Equal(t, len(data), 0)

	calls := fetcher.FetchCalls()
	gt.Equal(t, len(calls), 3)
}

func TestShutdownClosesSessions(t *testing.T) {
	server, _, sessions := newServer(t, model.NoDataResult())
	srv := httptest.NewServer(server.Server.Handler)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/milestone/milestone1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	gt.NoError(t, err).Required()
	defer conn.Close()

	msg := readMessage(t, conn)
	gt.Equal(t, msg.Type, surface.MessageStatus)
	gt.Equal(t, sessions.Count(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	gt.NoError(t, server.Shutdown(ctx))

	gt.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	gt.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))
}
