// Package dialogue is the boundary to the boss dialogue collaborator. The
// simulation submits requests tagged with a token and later polls for
// responses without ever blocking; anything that goes wrong degrades to a
// deterministic local classification.
package dialogue

import (
	"context"
	"errors"
	"strings"
)

// Phase names the interlude a request belongs to.
type Phase string

const (
	PhaseIntro  Phase = "intro"
	PhasePhase2 Phase = "phase2"
)

// Classification is the collaborator's reading of the player's reply.
type Classification string

const (
	Aggressive Classification = "aggressive"
	Determined Classification = "determined"
	Taunt      Classification = "taunt"
	Angry      Classification = "angry"
)

var (
	ErrNoText  = errors.New("dialogue: empty player text")
	ErrTimeout = errors.New("dialogue: no reply before the deadline")
)

// Request is one exchange sent to the collaborator.
type Request struct {
	Token       uint64   `json:"-"`
	Phase       Phase    `json:"phase"`
	Mode        string   `json:"mikeMode"`
	PlayerText  string   `json:"playerText"`
	Exchange    int      `json:"exchange"`
	HistoryUser []string `json:"historyUser"`
	HistoryBoss []string `json:"historyMike"`
}

// Response carries the classification and the boss's line back.
type Response struct {
	Token          uint64
	Classification Classification
	Line           string
	Fallback       bool
	Err            error
}

// Client submits requests and delivers responses on a channel. Request
// must not block the caller.
type Client interface {
	Request(ctx context.Context, req Request)
	Responses() <-chan Response
}

// Rules holds the keyword lists and line templates for local classification.
type Rules struct {
	AggressiveWords []string
	TauntWords      []string
	Lines           []string
}

// Valid reports whether c is a known classification for phase.
func Valid(phase Phase, c Classification) bool {
	switch phase {
	case PhaseIntro:
		return c == Aggressive || c == Determined
	case PhasePhase2:
		return c == Taunt || c == Angry
	}
	return false
}

// Classify reads the player's text with a keyword heuristic.
func (r Rules) Classify(phase Phase, text string) Classification {
	lower := strings.ToLower(text)
	if phase == PhasePhase2 {
		if containsAny(lower, r.TauntWords) {
			return Taunt
		}
		return Angry
	}
	if containsAny(lower, r.AggressiveWords) {
		return Aggressive
	}
	return Determined
}

// Line builds the boss's reply for a classification.
func (r Rules) Line(c Classification, exchange int) string {
	body := ""
	if len(r.Lines) > 0 {
		if exchange < 0 {
			exchange = -exchange
		}
		body = r.Lines[exchange%len(r.Lines)]
	}
	switch c {
	case Aggressive:
		return "You've made me... furious! " + body
	case Determined:
		return "You sound determined. Good. " + body
	case Taunt:
		return "Ha! Keep laughing. " + body
	case Angry:
		return "Enough talk. " + body
	}
	return body
}

// Fallback answers a request locally.
func (r Rules) Fallback(req Request, err error) Response {
	c := r.Classify(req.Phase, req.PlayerText)
	return Response{
		Token:          req.Token,
		Classification: c,
		Line:           r.Line(c, req.Exchange),
		Fallback:       true,
		Err:            err,
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(text, w) {
			return true
		}
	}
	return false
}
