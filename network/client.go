package network

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	cfg "github.com/automoto/buildfight/config"
	"github.com/automoto/buildfight/shared/messages"
	"github.com/coder/websocket"
	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return "unknown"
}

var (
	ErrNotConnected  = errors.New("not connected")
	ErrSendQueueFull = errors.New("send queue full")
)

const (
	dialTimeout   = 5 * time.Second
	eventCapacity = 256
)

// Stats are cumulative transport counters since the last Connect.
type Stats struct {
	RxBytes        uint64
	RxMessages     uint64
	TxMessages     uint64
	DroppedSends   uint64
	StaleSnapshots uint64
	DecodeErrors   uint64
}

// Client manages the WebSocket connection to a match server.
// Inbound frames are decoded on a reader goroutine and handed to the game
// loop through channels; outbound frames go through a bounded queue drained
// by a writer goroutine, so Send never blocks the tick.
type Client struct {
	mu deadlock.RWMutex

	state     ClientState
	lastError error
	url       string
	conn      *websocket.Conn
	cancel    context.CancelFunc
	sendCh    chan []byte

	snapshotCh chan messages.Snapshot // size-1 buffered; latest wins
	eventCh    chan messages.Message

	rxBytes        atomic.Uint64
	rxMessages     atomic.Uint64
	txMessages     atomic.Uint64
	droppedSends   atomic.Uint64
	staleSnapshots atomic.Uint64
	decodeErrors   atomic.Uint64
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan messages.Snapshot, 1),
		eventCh:    make(chan messages.Message, eventCapacity),
	}
}

// Connect dials rawURL in a background goroutine. Any previous connection is
// closed first.
func (c *Client) Connect(rawURL string) {
	c.Disconnect()

	ctx, cancel := context.WithCancel(context.Background())
	sendCh := make(chan []byte, max(cfg.Network.SendQueue, 1))

	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.url = rawURL
	c.cancel = cancel
	c.sendCh = sendCh
	c.mu.Unlock()

	c.resetStats()
	c.drain()

	go c.run(ctx, rawURL, sendCh)
}

func (c *Client) run(ctx context.Context, rawURL string, sendCh chan []byte) {
	dialCtx, cancelDial := context.WithTimeout(ctx, dialTimeout)
	conn, _, err := websocket.Dial(dialCtx, rawURL, nil)
	cancelDial()
	if err != nil {
		if ctx.Err() == nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
		return
	}
	if cfg.Network.ReadLimit > 0 {
		conn.SetReadLimit(cfg.Network.ReadLimit)
	}

	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		_ = conn.CloseNow()
		return
	}
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()

	log.Info().Str("url", rawURL).Msg("connected to server")

	done := make(chan struct{})
	go c.writeLoop(ctx, done, conn, sendCh)
	c.readLoop(ctx, conn)
	close(done)
}

func (c *Client) writeLoop(ctx context.Context, done <-chan struct{}, conn *websocket.Conn, sendCh chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case payload := <-sendCh:
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				if ctx.Err() == nil {
					log.Warn().Err(err).Msg("write failed")
				}
				return
			}
			c.txMessages.Add(1)
		}
	}
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	var lastSeq uint64
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			c.closed(ctx, conn, err)
			return
		}
		c.rxBytes.Add(uint64(len(data)))
		c.rxMessages.Add(1)

		msg, err := messages.Decode(data)
		if err != nil {
			c.decodeErrors.Add(1)
			log.Debug().Err(err).Int("bytes", len(data)).Msg("dropping undecodable frame")
			continue
		}

		switch m := msg.(type) {
		case messages.Snapshot:
			if m.Seq > 0 {
				if m.Seq <= lastSeq {
					c.staleSnapshots.Add(1)
					continue
				}
				lastSeq = m.Seq
			}
			select { // drain stale, push latest
			case <-c.snapshotCh:
			default:
			}
			c.snapshotCh <- m
		default:
			select {
			case c.eventCh <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (c *Client) closed(ctx context.Context, conn *websocket.Conn, err error) {
	if ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.mu.Unlock()

	status := websocket.CloseStatus(err)
	if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
		log.Info().Int("status", int(status)).Msg("server closed connection")
		c.mu.Lock()
		c.state = StateDisconnected
		c.mu.Unlock()
		return
	}
	c.setError(fmt.Errorf("connection lost: %w", err))
}

// Disconnect closes the connection and stops the reader and writer.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	c.state = StateDisconnected
	c.conn = nil
	c.cancel = nil
	c.sendCh = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.CloseNow()
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url
}

// LatestSnapshot returns the most recent snapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *messages.Snapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// DrainEvents appends every queued non-snapshot message to dst in arrival order.
func (c *Client) DrainEvents(dst []messages.Message) []messages.Message {
	for {
		select {
		case msg := <-c.eventCh:
			dst = append(dst, msg)
		default:
			return dst
		}
	}
}

// Send encodes msg and queues it for the writer. It never blocks.
func (c *Client) Send(msg messages.Message) error {
	c.mu.RLock()
	state := c.state
	sendCh := c.sendCh
	c.mu.RUnlock()

	if state != StateConnected || sendCh == nil {
		return ErrNotConnected
	}

	payload, err := messages.Encode(msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msg.Type(), err)
	}

	select {
	case sendCh <- payload:
		return nil
	default:
		c.droppedSends.Add(1)
		return ErrSendQueueFull
	}
}

func (c *Client) Stats() Stats {
	return Stats{
		RxBytes:        c.rxBytes.Load(),
		RxMessages:     c.rxMessages.Load(),
		TxMessages:     c.txMessages.Load(),
		DroppedSends:   c.droppedSends.Load(),
		StaleSnapshots: c.staleSnapshots.Load(),
		DecodeErrors:   c.decodeErrors.Load(),
	}
}

func (c *Client) resetStats() {
	c.rxBytes.Store(0)
	c.rxMessages.Store(0)
	c.txMessages.Store(0)
	c.droppedSends.Store(0)
	c.staleSnapshots.Store(0)
	c.decodeErrors.Store(0)
}

// drain discards anything left over from a previous connection.
func (c *Client) drain() {
	c.LatestSnapshot()
	for {
		select {
		case <-c.eventCh:
		default:
			return
		}
	}
}

func (c *Client) setError(err error) {
	log.Error().Err(err).Msg("network error")
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// ResolveURL turns a user-entered server address into a WebSocket URL.
// A bare host:port gets the ws scheme and the configured endpoint path;
// http and https map to ws and wss.
func ResolveURL(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", errors.New("empty server address")
	}
	if !strings.Contains(addr, "://") {
		addr = "ws://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("parse server address: %w", err)
	}

	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("server address %q has no host", addr)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = cfg.Network.Path
	}
	return u.String(), nil
}
