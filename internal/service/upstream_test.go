package service

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequestReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Test-Header"); got != "yes" {
			t.Errorf("header X-Test-Header = %q, want %q", got, "yes")
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewUpstreamClient(0)
	body, err := c.Request(context.Background(), Target{
		URL:    srv.URL,
		Header: map[string]string{"X-Test-Header": "yes"},
	})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %q", body)
	}
}

func TestRequestNon200WithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream exploded"}`))
	}))
	defer srv.Close()

	c := NewUpstreamClient(0)
	_, err := c.Request(context.Background(), Target{URL: srv.URL})
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("Request() error = %v, want *Error", err)
	}
	if e.Kind != KindAPI || e.Status != http.StatusBadGateway {
		t.Errorf("kind = %s, status = %d", e.Kind, e.Status)
	}
	if e.Message != "upstream exploded" {
		t.Errorf("message = %q", e.Message)
	}
}

func TestRequestNon200WithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>nope</html>"))
	}))
	defer srv.Close()

	c := NewUpstreamClient(0)
	_, err := c.Request(context.Background(), Target{URL: srv.URL})
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("Request() error = %v, want *Error", err)
	}
	if e.Message != "Unknown error" {
		t.Errorf("message = %q, want %q", e.Message, "Unknown error")
	}
}

func TestRequestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 立即关闭，制造连接失败

	c := NewUpstreamClient(0)
	_, err := c.Request(context.Background(), Target{URL: srv.URL})
	if !IsKind(err, KindNetwork) {
		t.Errorf("Request() error = %v, want network kind", err)
	}
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewUpstreamClient(50 * time.Millisecond)
	_, err := c.Request(context.Background(), Target{URL: srv.URL})
	if !IsKind(err, KindTimeout) {
		t.Errorf("Request() error = %v, want timeout kind", err)
	}
}

func TestRequestJSONParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := NewUpstreamClient(0)
	var into map[string]interface{}
	err := c.RequestJSON(context.Background(), Target{URL: srv.URL}, &into)
	if !IsKind(err, KindParse) {
		t.Errorf("RequestJSON() error = %v, want parse kind", err)
	}
}

func TestFetchImageFollowsOneRedirect(t *testing.T) {
	image := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	mux := http.NewServeMux()
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.Write(image)
	})
	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/twice", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/redirect", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewUpstreamClient(0)

	data, err := c.FetchImage(context.Background(), srv.URL+"/redirect")
	if err != nil {
		t.Fatalf("FetchImage() error = %v", err)
	}
	if !bytes.Equal(data, image) {
		t.Errorf("image bytes = %v, want %v", data, image)
	}

	// 第二跳应当被拒绝
	if _, err := c.FetchImage(context.Background(), srv.URL+"/twice"); err == nil {
		t.Error("FetchImage() with two redirects succeeded, want error")
	}
}

func TestFetchImageNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewUpstreamClient(0)
	if _, err := c.FetchImage(context.Background(), srv.URL); !IsKind(err, KindAPI) {
		t.Errorf("FetchImage() error = %v, want api kind", err)
	}
}
