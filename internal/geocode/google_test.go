package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placez/placez-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GoogleClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGoogleClient(config.GeocodeConfig{
		APIKey:         "test-key",
		Endpoint:       server.URL,
		TimeoutSeconds: 2,
	}, slog.Default())
}

func TestGoogleClient_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1600 Amphitheatre Pkwy, Mountain View, CA", r.URL.Query().Get("address"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": "OK",
				"results": [{"geometry": {"location": {"lat": 37.4224, "lng": -122.0841}}}]
			}`))
		})

		loc, err := client.Resolve(context.Background(), "1600 Amphitheatre Pkwy, Mountain View, CA")
		require.NoError(t, err)

		assert.Equal(t, 37.4224, loc.Lat)
		assert.Equal(t, -122.0841, loc.Lng)
	})

	t.Run("zero results", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
		})

		_, err := client.Resolve(context.Background(), "nowhere at all")
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})

	t.Run("empty address skips upstream", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("upstream must not be called for an empty address")
		})

		_, err := client.Resolve(context.Background(), "")
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})

	t.Run("upstream error status", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Resolve(context.Background(), "somewhere")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrAddressNotFound)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := client.Resolve(ctx, "somewhere")
		assert.Error(t, err)
	})
}
