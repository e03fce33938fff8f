package advice

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTipOfTheDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/advice", r.URL.Path)
		_, _ = w.Write([]byte(`{"slip":{"id":42,"advice":"Wear sunscreen."}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, slog.Default())

	assert.Equal(t, "Wear sunscreen.", c.TipOfTheDay(context.Background()))
}

func TestTipOfTheDayFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { http.Error(w, "boom", http.StatusInternalServerError) },
		},
		{
			name:    "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("not json")) },
		},
		{
			name:    "empty advice",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"slip":{"id":1,"advice":"  "}}`)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewClient(server.URL, slog.Default())

			assert.Equal(t, FallbackTip, c.TipOfTheDay(context.Background()))
		})
	}
}

func TestTipOfTheDayUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", slog.Default())

	assert.Equal(t, FallbackTip, c.TipOfTheDay(context.Background()))
}
