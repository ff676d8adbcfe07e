package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingLayer wraps PlainListener and records the opened listener so
// tests can learn the OS-assigned port.
type capturingLayer struct {
	inner    *PlainListener
	listener chan net.Listener
}

func newCapturingLayer() *capturingLayer {
	return &capturingLayer{
		inner:    NewPlainListener(),
		listener: make(chan net.Listener, 1),
	}
}

func (l *capturingLayer) Listen(protocol, addr string) (net.Listener, error) {
	ln, err := l.inner.Listen(protocol, addr)
	if err != nil {
		return nil, err
	}
	l.listener <- ln
	return ln, nil
}

func TestHTTPServer_Address(t *testing.T) {
	t.Parallel()

	srv := NewHTTPServer(http.NotFoundHandler(), ":8080")
	assert.Equal(t, ":8080", srv.Address())
}

func TestHTTPServer_StartAndStop(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := NewHTTPServer(handler, "127.0.0.1:0")
	layer := newCapturingLayer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(layer)
	}()

	var ln net.Listener
	select {
	case ln = <-layer.listener:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_Start_ListenError(t *testing.T) {
	t.Parallel()

	srv := NewHTTPServer(http.NotFoundHandler(), "invalid-address")

	err := srv.Start(NewPlainListener())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
