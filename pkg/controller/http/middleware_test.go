package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	ctrlhttp "github.com/secmon-lab/burndown/pkg/controller/http"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	var handlerLogged bool
	handler := middleware.RequestID(ctrlhttp.LoggingMiddleware(ctx)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxlog.From(r.Context()).Info("inside handler")
		handlerLogged = true
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/milestone/m1?print=true", nil))
	gt.Equal(t, w.Code, http.StatusTeapot)
	gt.True(t, handlerLogged)

	var records []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var rec map[string]any
		gt.NoError(t, dec.Decode(&rec)).Required()
		records = append(records, rec)
	}
	gt.Equal(t, len(records), 2)

	inside, access := records[0], records[1]
	gt.Equal(t, inside["msg"], "inside handler")
	gt.NotEqual(t, inside["request_id"], nil)
	gt.Equal(t, inside["request_id"], access["request_id"])

	gt.Equal(t, access["msg"], "HTTP request")
	gt.Equal(t, access["method"], "GET")
	gt.Equal(t, access["path"], "/milestone/m1")
	gt.Equal(t, access["status"], float64(http.StatusTeapot))
	gt.Equal(t, access["bytes"], float64(len("short and stout")))
	gt.Equal(t, access["level"], "INFO")
}

func TestLoggingMiddlewareLevels(t *testing.T) {
	run := func(t *testing.T, status int, header http.Header) map[string]any {
		t.Helper()
		var buf bytes.Buffer
		ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

		handler := ctrlhttp.LoggingMiddleware(ctx)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		req := httptest.NewRequest(http.MethodGet, "/milestone/m1/ws", nil)
		for k, v := range header {
			req.Header[k] = v
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)

		var rec map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &rec)).Required()
		return rec
	}

	t.Run("server errors are warnings", func(t *testing.T) {
		rec := run(t, http.StatusBadGateway, nil)
		gt.Equal(t, rec["level"], "WARN")
		gt.Equal(t, rec["msg"], "HTTP request")
	})

	t.Run("websocket upgrade", func(t *testing.T) {
		rec := run(t, http.StatusBadRequest, http.Header{"Upgrade": {"websocket"}})
		gt.Equal(t, rec["level"], "INFO")
		gt.Equal(t, rec["msg"], "websocket session")
	})
}
