package identity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trustscore/config"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, bvnLookupPath, r.URL.Path)
		assert.Equal(t, "22222222222", r.URL.Query().Get("bvn"))
		assert.Equal(t, "app-id", r.Header.Get("AppId"))
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Identity: &config.IdentityConfig{
			BaseURL:   baseURL + "/",
			AppID:     "app-id",
			SecretKey: "secret",
			Timeout:   time.Second,
		},
	}
}

func TestLookupBVN_Success(t *testing.T) {
	srv := newProvider(t, http.StatusOK, `{"entity":{"bvn":"22222222222","first_name":"ADA","middle_name":"N","last_name":"OBI",
		"date_of_birth":"1990-01-01","phone_number1":"08000000000","gender":"Female","image":"aGk="}}`)

	p := NewBVNProvider(testConfig(srv.URL), srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	profile, err := p.LookupBVN(context.Background(), "22222222222")

	require.NoError(t, err)
	assert.Equal(t, "22222222222", profile.BVN)
	assert.Equal(t, "ADA N OBI", profile.FullName())
	assert.Equal(t, "08000000000", profile.PhoneNumber)
	assert.Equal(t, "aGk=", profile.PhotoBase64)
}

func TestLookupBVN_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"not found status", http.StatusNotFound, `{"error":"not found"}`, domainerrors.ErrIdentityNotFound},
		{"missing entity", http.StatusOK, `{"error":"no match"}`, domainerrors.ErrIdentityNotFound},
		{"unauthorized", http.StatusUnauthorized, `{}`, domainerrors.ErrIdentityLookupFailed},
		{"server error", http.StatusInternalServerError, ``, domainerrors.ErrIdentityLookupFailed},
		{"malformed", http.StatusOK, `{"entity":`, domainerrors.ErrIdentityLookupFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newProvider(t, tt.status, tt.body)

			p := NewBVNProvider(testConfig(srv.URL), srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
			profile, err := p.LookupBVN(context.Background(), "22222222222")

			require.Error(t, err)
			assert.Nil(t, profile)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}
