package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/ecochain/ecochain-api/pkg/app/errors"
	"github.com/ecochain/ecochain-api/pkg/config"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func TestHandleError_ServiceError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return apperrors.ResourceNotFoundError(errors.New("no rows"), "user not found")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/users/0x01", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d want %d", rec.Code, http.StatusNotFound)
	}
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Error != "user not found" || got.Code != http.StatusNotFound {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestHandleError_UnknownError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return errors.New("leaky internal detail")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d", rec.Code)
	}
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Error != "Unexpected Service Error" {
		t.Fatalf("internal error leaked: %+v", got)
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type: got %q", ct)
	}
	if body := rec.Body.String(); body != "{\"status\":\"ok\"}\n" {
		t.Fatalf("body: got %q", body)
	}
}

func TestServeAndWait_NilArgs(t *testing.T) {
	if err := ServeAndWait(context.Background(), nil, nil, &config.ServerConfig{}); err == nil {
		t.Fatal("expected nil handler to fail")
	}
	if err := ServeAndWait(context.Background(), http.NotFoundHandler(), nil, nil); err == nil {
		t.Fatal("expected nil config to fail")
	}
}

func TestServeAndWait_ShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close()

	cfg := &config.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: time.Second}
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ServeAndWait(ctx, handler, nil, cfg) }()

	url := "http://" + cfg.Addr() + "/"
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(url) //nolint:noctx
		if err == nil {
			_ = resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("server never became ready: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ServeAndWait() returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ServeAndWait() did not return after cancel")
	}
}
