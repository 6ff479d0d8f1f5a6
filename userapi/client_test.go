package userapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/users/1" {
			t.Errorf("expected /users/1, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *User
	}{
		{"found", http.StatusOK, `{"id":1,"name":"John Doe","username":"jd"}`, &User{ID: 1, Name: "John Doe"}},
		{"null payload", http.StatusOK, `null`, nil},
		{"empty body", http.StatusOK, ``, nil},
		{"not found", http.StatusNotFound, `{}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			c := New(srv.URL+"/", WithHTTPClient(srv.Client()))

			got, err := c.GetUser(context.Background(), 1)
			if err != nil {
				t.Fatalf("GetUser: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("user mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetUser_ServerError(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	c := New(srv.URL)

	_, err := c.GetUser(context.Background(), 1)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if se.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", se.Code)
	}
}

func TestGetUser_BadJSON(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"id":`)
	c := New(srv.URL)

	if _, err := c.GetUser(context.Background(), 1); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGetUser_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := New(srv.URL, WithTimeout(20*time.Millisecond))
	if _, err := c.GetUser(context.Background(), 1); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestURL(t *testing.T) {
	c := New("https://api.example.com/", WithPath(UserPath))
	if got := c.URL(42); got != "https://api.example.com/user/42" {
		t.Errorf("expected https://api.example.com/user/42, got %s", got)
	}
}
