package web

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/schedule"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Browsers have no character grid; sessions get a screen that always fits.
	browserScreenW = 80
	browserScreenH = 24
)

// client runs one browser session. Only run's goroutine touches the session
// and writes to the connection; readPump only decodes input.
type client struct {
	srv    *Server
	conn   *websocket.Conn
	id     string
	logger *log.Logger

	quit chan struct{} // closed when run returns

	sess       *t2048.Session
	best       int
	scoreSaved bool
	last       t2048.Snapshot
	ticks      *schedule.Interval
}

func newClient(srv *Server, conn *websocket.Conn, mode t2048.Mode) *client {
	id := uuid.NewString()
	c := &client{
		srv:    srv,
		conn:   conn,
		id:     id,
		logger: srv.logger.With("session", id),
		ticks:  &schedule.Interval{},
		quit:   make(chan struct{}),
	}
	c.start(mode)
	return c
}

// start begins a new session in mode and restarts the tick loop so that
// no tick scheduled for the previous session reaches the new one.
func (c *client) start(mode t2048.Mode) {
	seed := c.srv.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c.sess = t2048.NewWithRules(mode, c.srv.cfg.Rules)
	c.sess.Reset(core.RuntimeConfig{
		ScreenW:  browserScreenW,
		ScreenH:  browserScreenH,
		TickRate: c.srv.cfg.TickRate,
		Seed:     seed,
	})
	c.scoreSaved = false
	c.best = c.loadBest()
	c.ticks.Restart(time.Second / time.Duration(c.srv.cfg.TickRate))
}

// run is the session loop. It returns when the peer goes away or the
// server shuts down.
func (c *client) run() {
	defer close(c.quit)
	defer c.conn.Close()
	defer c.ticks.Stop()

	in := make(chan clientMessage)
	go c.readPump(in)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := c.sendState(); err != nil {
		return
	}

	for {
		select {
		case msg, ok := <-in:
			if !ok {
				c.saveAbandoned()
				return
			}
			if err := c.handle(msg); err != nil {
				return
			}

		case <-c.ticks.C():
			res := c.sess.Step(core.NewInputFrame())
			c.recordEvents(res.Events)
			if c.changed() {
				if err := c.sendState(); err != nil {
					return
				}
			}

		case <-ping.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.srv.done:
			c.saveAbandoned()
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			//nolint:errcheck // Best-effort close frame
			c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}

// readPump decodes client messages until the connection fails, then closes in.
func (c *client) readPump(in chan<- clientMessage) {
	defer close(in)

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read failed", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			msg = clientMessage{Type: "invalid"}
		}

		select {
		case in <- msg:
		case <-c.quit:
			return
		}
	}
}

// handle applies one client message and replies with the new state.
func (c *client) handle(msg clientMessage) error {
	switch msg.Type {
	case msgKey:
		switch action := keyAction(msg.Key); action {
		case core.ActionPause:
			c.sess.TogglePause()
		case core.ActionRestart:
			c.saveAbandoned()
			c.start(c.sess.Mode())
		default:
			if dir, ok := t2048.DirectionFromAction(action); ok {
				c.sess.Move(dir)
			}
		}

	case msgRestart:
		c.saveAbandoned()
		c.start(c.sess.Mode())

	case msgMode:
		mode, err := t2048.ParseMode(msg.Mode)
		if err != nil {
			return c.sendError(err.Error())
		}
		c.saveAbandoned()
		c.start(mode)
		c.logger.Info("mode changed", "mode", mode)

	default:
		return c.sendError(fmt.Sprintf("unknown message type %q", msg.Type))
	}

	return c.sendState()
}

// changed reports whether the state differs from the last one sent.
func (c *client) changed() bool {
	snap := c.sess.Snapshot()
	snap.Tick = c.last.Tick
	return snap != c.last
}

func (c *client) sendState() error {
	snap := c.sess.Snapshot()
	c.last = snap

	return c.write(stateMessage{
		Type:     msgState,
		Session:  c.id,
		Title:    c.sess.Title(),
		Best:     max(c.best, snap.Score),
		Snapshot: snap,
	})
}

func (c *client) sendError(text string) error {
	return c.write(errorMessage{Type: msgError, Error: text})
}

func (c *client) write(v any) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
	if err := c.conn.WriteJSON(v); err != nil {
		c.logger.Debug("websocket write failed", "error", err)
		return err
	}
	return nil
}

// recordEvents saves the scores of sessions and attempts that just ended.
func (c *client) recordEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventTimeUp, core.EventNoMoves:
			c.saveScore(ev.Kind.String(), ev.Score, ev.MaxTile)
			c.scoreSaved = true
		case core.EventHardcoreReset:
			c.saveScore(ev.Kind.String(), ev.Score, ev.MaxTile)
		}
	}
}

// saveAbandoned records the score of a running session the player leaves.
func (c *client) saveAbandoned() {
	if c.sess.State().GameOver || c.scoreSaved {
		return
	}
	c.saveScore("abandoned", c.sess.Score(), c.sess.MaxTile())
	c.scoreSaved = true
}

func (c *client) saveScore(reason string, score, maxTile int) {
	c.best = max(c.best, score)
	if c.srv.store == nil || score <= 0 {
		return
	}

	_, err := c.srv.store.SaveScore(storage.ScoreRecord{
		Mode:    c.sess.ID(),
		Score:   score,
		MaxTile: maxTile,
		Reason:  reason,
	})
	if err != nil {
		c.logger.Warn("could not save score", "mode", c.sess.ID(), "error", err)
	}
}

func (c *client) loadBest() int {
	if c.srv.store == nil {
		return 0
	}
	best, err := c.srv.store.BestScore(c.sess.ID())
	if err != nil {
		c.logger.Warn("could not load best score", "error", err)
		return 0
	}
	return best
}
