package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/buildfight/shared/messages"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer runs handler for every accepted connection and returns a ws URL.
func startServer(t *testing.T, handler func(ctx context.Context, conn *websocket.Conn)) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()
		handler(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

// write runs on the server goroutine, so it reports with Errorf instead of failing.
func write(ctx context.Context, t *testing.T, conn *websocket.Conn, frame string) {
	if err := conn.Write(ctx, websocket.MessageText, []byte(frame)); err != nil {
		t.Errorf("server write %s: %v", frame, err)
	}
}

func waitConnected(t *testing.T, c *Client) {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.State() == StateConnected
	}, 2*time.Second, 5*time.Millisecond)
}

func TestClientReceivesEventsAndLatestSnapshot(t *testing.T) {
	release := make(chan struct{})
	url := startServer(t, func(ctx context.Context, conn *websocket.Conn) {
		write(ctx, t, conn, `{"t":"id","pid":7}`)
		write(ctx, t, conn, `{"t":"snap","seq":2,"p":{"7":{"x":1,"y":0,"z":0,"hp":80,"shield":0,"kills":0,"state":"alive"}},"str":[],"bullets":[]}`)
		write(ctx, t, conn, `{"t":"snap","seq":1,"p":{},"str":[],"bullets":[]}`)
		write(ctx, t, conn, `not json`)
		write(ctx, t, conn, `{"t":"kill","killer":"7","killed":"3"}`)
		<-release
	})
	defer close(release)

	c := NewClient()
	c.Connect(url)
	defer c.Disconnect()
	waitConnected(t, c)

	var events []messages.Message
	require.Eventually(t, func() bool {
		events = c.DrainEvents(events)
		return len(events) >= 2
	}, 2*time.Second, 5*time.Millisecond)

	require.Len(t, events, 2)
	assert.Equal(t, messages.Identity{PlayerID: "7"}, events[0])
	assert.Equal(t, messages.Kill{Killer: "7", Killed: "3"}, events[1])

	snap := c.LatestSnapshot()
	require.NotNil(t, snap)
	assert.Equal(t, uint64(2), snap.Seq)
	assert.Equal(t, 80.0, snap.Players["7"].HP)
	assert.Nil(t, c.LatestSnapshot(), "snapshot is consumed once")

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.StaleSnapshots)
	assert.Equal(t, uint64(1), stats.DecodeErrors)
	assert.Equal(t, uint64(5), stats.RxMessages)
}

func TestClientSendsFlatFrames(t *testing.T) {
	received := make(chan string, 1)
	url := startServer(t, func(ctx context.Context, conn *websocket.Conn) {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		received <- string(data)
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	})

	c := NewClient()
	assert.ErrorIs(t, c.Send(messages.Edit{}), ErrNotConnected)

	c.Connect(url)
	defer c.Disconnect()
	waitConnected(t, c)

	require.NoError(t, c.Send(messages.Build{X: 1, Y: 0, Z: 2, Piece: "wall"}))

	select {
	case frame := <-received:
		assert.JSONEq(t, `{"t":"build","x":1,"y":0,"z":2,"mat":"wall"}`, frame)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the build frame")
	}
}

func TestClientServerCloseDisconnects(t *testing.T) {
	url := startServer(t, func(ctx context.Context, conn *websocket.Conn) {
		_ = conn.Close(websocket.StatusNormalClosure, "match over")
	})

	c := NewClient()
	c.Connect(url)
	defer c.Disconnect()

	require.Eventually(t, func() bool {
		return c.State() == StateDisconnected
	}, 2*time.Second, 5*time.Millisecond)
	assert.NoError(t, c.LastError())
}

func TestClientDialFailureSetsError(t *testing.T) {
	c := NewClient()
	c.Connect("ws://127.0.0.1:1/ws")
	defer c.Disconnect()

	require.Eventually(t, func() bool {
		return c.State() == StateError
	}, 6*time.Second, 10*time.Millisecond)
	assert.ErrorContains(t, c.LastError(), "connection failed")
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:10000", "ws://localhost:10000/ws"},
		{"  example.com:80  ", "ws://example.com:80/ws"},
		{"http://example.com", "ws://example.com/ws"},
		{"https://example.com/", "wss://example.com/ws"},
		{"wss://example.com/match/3", "wss://example.com/match/3"},
		{"ws://10.0.0.2:9000/custom", "ws://10.0.0.2:9000/custom"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ResolveURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveURLErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "ftp://example.com", "ws://"} {
		_, err := ResolveURL(in)
		assert.Error(t, err, in)
	}
}
