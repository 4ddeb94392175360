package pprofserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func pprofGet(t *testing.T, h http.Handler, remoteAddr string, auth func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	r.RemoteAddr = remoteAddr
	if auth != nil {
		auth(r)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHandler_LoopbackPassesWithoutAuth(t *testing.T) {
	t.Parallel()

	h := Handler(Config{User: "u", Pass: "p"})

	w := pprofGet(t, h, "127.0.0.1:50000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = pprofGet(t, h, "[::1]:50000", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RemoteNeedsBasicAuth(t *testing.T) {
	t.Parallel()

	h := Handler(Config{User: "u", Pass: "p"})

	w := pprofGet(t, h, "10.1.2.3:50000", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `Basic realm="pprof"`, w.Header().Get("WWW-Authenticate"))

	w = pprofGet(t, h, "10.1.2.3:50000", func(r *http.Request) {
		r.SetBasicAuth("u", "wrong")
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = pprofGet(t, h, "10.1.2.3:50000", func(r *http.Request) {
		r.SetBasicAuth("u", "p")
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RemoteRejectedWhenNoCredsConfigured(t *testing.T) {
	t.Parallel()

	h := Handler(Config{})

	w := pprofGet(t, h, "10.1.2.3:50000", func(r *http.Request) {
		r.SetBasicAuth("", "")
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIsLoopback(t *testing.T) {
	t.Parallel()

	require.True(t, isLoopback("127.0.0.1:80"))
	require.True(t, isLoopback("[::1]:80"))
	require.False(t, isLoopback("192.168.1.5:80"))
	require.False(t, isLoopback("not-an-addr"))
}
