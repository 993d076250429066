package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"TradeBoard/internal/domain/models"
	drepo "TradeBoard/internal/domain/repository"
	xlogger "TradeBoard/pkg/logger"

	"github.com/gorilla/websocket"
)

// Client implements a MarketStream backed by the backend's market-data
// WebSocket feed. One connection per Connect; there is no reconnect logic —
// a dropped connection stops live updates until the process restarts.
type Client struct {
	url          string
	pingInterval time.Duration
	bufferSize   int

	logger  *xlogger.Logger
	metrics drepo.Metrics

	conn      *websocket.Conn
	connected bool
	closeOnce sync.Once
}

// Option configures the stream client.
type Option func(*Client)

// WithPingInterval sets the keepalive ping period.
func WithPingInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pingInterval = d
		}
	}
}

// WithBufferSize sets the tick channel capacity.
func WithBufferSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m drepo.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a new market-data stream client.
func New(url string, logger *xlogger.Logger, opts ...Option) drepo.MarketStream {
	c := &Client{
		url:          url,
		pingInterval: 30 * time.Second,
		bufferSize:   256,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect establishes the WebSocket connection.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("stream connect: %w", err)
	}
	c.conn = conn
	c.connected = true
	c.logger.Info("stream: connected", xlogger.String("url", c.url))
	return nil
}

// wire format of one tick frame
type tickMessage struct {
	CurrentPrice   float64 `json:"current_price"`
	PriceChange24h float64 `json:"price_change_24h"`
}

// Read streams decoded ticks and errors. Malformed frames are counted,
// logged and skipped; the subscription survives them. Both channels close
// when the read loop ends.
func (c *Client) Read(ctx context.Context) (<-chan *models.Tick, <-chan error) {
	ticks := make(chan *models.Tick, c.bufferSize)
	errs := make(chan error, 1)

	// ping loop
	go func() {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.conn != nil {
					_ = c.conn.WriteMessage(websocket.PingMessage, nil)
				}
			}
		}
	}()

	// read loop
	go func() {
		defer close(ticks)
		defer close(errs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if c.conn == nil {
					errs <- fmt.Errorf("stream conn nil")
					return
				}
				_, b, err := c.conn.ReadMessage()
				if err != nil {
					c.connected = false
					errs <- fmt.Errorf("stream read: %w", err)
					return
				}
				var m tickMessage
				if err := json.Unmarshal(b, &m); err != nil {
					if c.metrics != nil {
						c.metrics.RecordError("stream_decode")
					}
					c.logger.Warn("stream: malformed tick skipped", xlogger.Error(err))
					continue
				}
				tick := &models.Tick{CurrentPrice: m.CurrentPrice, PriceChange24h: m.PriceChange24h}
				select {
				case ticks <- tick:
				default:
					// drop on backpressure
					if c.metrics != nil {
						c.metrics.RecordError("stream_backpressure")
					}
				}
			}
		}
	}()

	return ticks, errs
}

// Close closes the WS connection. Safe to call more than once and in any
// connection state.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.connected = false
		if c.conn != nil {
			err = c.conn.Close()
		}
	})
	return err
}

// IsConnected indicates status.
func (c *Client) IsConnected() bool { return c.connected }
