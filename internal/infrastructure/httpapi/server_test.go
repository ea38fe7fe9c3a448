package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalGarden/internal/domain/lamp"
	"digitalGarden/internal/infrastructure/actuator"
)

func newTestServer(queueSize int) (*Server, chan string) {
	out := make(chan string, queueSize)
	srv := NewServer(lamp.NewState(lamp.DefaultTunables()), actuator.NewMemory(), out, 3)
	return srv, out
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRoutesEnqueueTextCommands(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/red/on", "RED ON"},
		{"/white/off", "WHITE OFF"},
		{"/mode/chase", "MODE CHASE"},
		{"/set/fade/15", "SET FADE 15"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			srv, out := newTestServer(4)
			rec := get(t, srv.Router(), tc.path)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))

			select {
			case line := <-out:
				assert.Equal(t, tc.want, line)
			default:
				t.Fatalf("aucune commande en file pour %s", tc.path)
			}
		})
	}
}

func TestFullQueueDropsCommand(t *testing.T) {
	srv, out := newTestServer(1)
	out <- "RED ON"

	rec := get(t, srv.Router(), "/blue/on")

	// La requête répond quand même, la commande est simplement perdue.
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, out, 1)
	assert.Equal(t, "RED ON", <-out)
}

func TestIndexRendersState(t *testing.T) {
	srv, _ := newTestServer(4)
	srv.state.SetMode(lamp.Rainbow)
	srv.store.SetIntensity(lamp.Green, 200)

	rec := get(t, srv.Router(), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "RAINBOW")
	assert.Contains(t, body, "200")
	assert.Contains(t, body, "FLOWER0")
}
