package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/badmonkey/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// writeTimeout bounds a single outgoing frame.
const writeTimeout = 2 * time.Second

var ErrNotConnected = errors.New("network: not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
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
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Client follows one match on a server. Router callbacks run on necs
// goroutines; everything they touch is guarded by mu or is a channel.
type Client struct {
	mu        sync.RWMutex
	state     ClientState
	lastError error
	joined    messages.JoinAccepted
	conn      *websocket.Conn
	sequence  uint32

	snapshots chan esync.WorldSnapshot // holds only the newest
	cues      chan messages.CueEvent
}

func NewClient() *Client {
	return &Client{
		state:     StateDisconnected,
		snapshots: make(chan esync.WorldSnapshot, 1),
		cues:      make(chan messages.CueEvent, 64),
	}
}

// Connect dials address in the background and asks to join once the
// socket is up. Progress is visible through State.
func (c *Client) Connect(address, version, playerName string, pilot bool) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.joined = messages.JoinAccepted{}
	c.sequence = 0
	c.mu.Unlock()

	join := messages.JoinRequest{Version: version, PlayerName: playerName, Pilot: pilot}
	router.OnConnect(func(*router.NetworkClient) { c.onConnect(join) })
	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) { c.onAccepted(msg) })
	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.fail(fmt.Errorf("join rejected: %s", msg.Reason))
	})
	router.On(func(_ *router.NetworkClient, snap esync.WorldSnapshot) { c.onSnapshot(snap) })
	router.On(func(_ *router.NetworkClient, cue messages.CueEvent) { c.onCue(cue) })
	router.OnDisconnect(func(_ *router.NetworkClient, err error) { c.onDisconnect(err) })
	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("Warning: network: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.fail(fmt.Errorf("connect %s: %w", address, err))
		}
	}()
}

func (c *Client) onConnect(join messages.JoinRequest) {
	log.Printf("Connected, joining as %q (pilot %v)", join.PlayerName, join.Pilot)
	c.setState(StateConnected)
	if err := c.write(join); err != nil {
		c.fail(fmt.Errorf("send join request: %w", err))
	}
}

func (c *Client) onAccepted(msg messages.JoinAccepted) {
	log.Printf("Joined %s at %d ticks/s, pilot %v", msg.ServerName, msg.TickRate, msg.Pilot)
	c.mu.Lock()
	c.joined = msg
	c.state = StateJoinedGame
	c.mu.Unlock()
}

func (c *Client) onSnapshot(snap esync.WorldSnapshot) {
	select {
	case <-c.snapshots:
	default:
	}
	select {
	case c.snapshots <- snap:
	default:
	}
}

// onCue drops cues when the consumer falls behind.
func (c *Client) onCue(cue messages.CueEvent) {
	select {
	case c.cues <- cue:
	default:
	}
}

func (c *Client) onDisconnect(err error) {
	log.Printf("Disconnected: %v", err)
	c.mu.Lock()
	if c.state != StateError {
		c.state = StateDisconnected
	}
	c.conn = nil
	c.mu.Unlock()
}

// Disconnect closes the socket and forgets the router callbacks.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
	router.ResetRouter()
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

// Joined returns the server's acceptance, zero until the join completes.
func (c *Client) Joined() messages.JoinAccepted {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined
}

func (c *Client) ServerName() string { return c.Joined().ServerName }
func (c *Client) TickRate() int      { return c.Joined().TickRate }

// Pilot reports whether the server handed this client the heroes.
func (c *Client) Pilot() bool { return c.Joined().Pilot }

// LatestSnapshot returns the newest world snapshot since the last call,
// or nil.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshots:
		return &snap
	default:
		return nil
	}
}

// DrainCues returns every cue received since the last call.
func (c *Client) DrainCues() []messages.CueEvent {
	var out []messages.CueEvent
	for {
		select {
		case cue := <-c.cues:
			out = append(out, cue)
		default:
			return out
		}
	}
}

// SendInput numbers in and sends it. Spectators send nothing.
func (c *Client) SendInput(in messages.HeroInput) error {
	c.mu.Lock()
	if c.state != StateJoinedGame || !c.joined.Pilot {
		c.mu.Unlock()
		return nil
	}
	c.sequence++
	in.Sequence = c.sequence
	c.mu.Unlock()

	return c.write(in)
}

func (c *Client) write(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize %T: %w", msg, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageBinary, payload)
}

func (c *Client) setState(s ClientState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) fail(err error) {
	log.Printf("Warning: %v", err)
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
