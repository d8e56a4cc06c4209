package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	inboundBuffer  = 256
	redialInterval = 3 * time.Second
)

// wsAdapter owns the persistent connection to the gesture tracker. It
// buffers inbound text messages on a channel drained only by the frame
// tick, so the adapter never touches interpreter state.
type wsAdapter struct {
	url       string
	messages  chan string
	connected atomic.Bool
	bytesRead atomic.Uint64
}

func newWSAdapter(url string) *wsAdapter {
	return &wsAdapter{url: url, messages: make(chan string, inboundBuffer)}
}

func (a *wsAdapter) Messages() <-chan string { return a.messages }
func (a *wsAdapter) Connected() bool         { return a.connected.Load() }
func (a *wsAdapter) BytesRead() uint64       { return a.bytesRead.Load() }

// run dials the tracker and pumps messages until ctx is cancelled,
// redialing after a short pause whenever the connection drops.
func (a *wsAdapter) run(ctx context.Context) {
	for ctx.Err() == nil {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, a.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logError("dial %s: %v", a.url, err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(redialInterval):
			}
			continue
		}

		consoleMessage("connected to " + a.url)
		a.connected.Store(true)
		a.readPump(ctx, conn)
		a.connected.Store(false)
		conn.Close()
		consoleMessage("connection lost")
	}
}

func (a *wsAdapter) readPump(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logError("websocket read: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		a.bytesRead.Add(uint64(len(data)))
		select {
		case a.messages <- string(data):
		default:
			logDebug("inbound buffer full, message dropped")
		}
	}
}
