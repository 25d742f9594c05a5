package network

import (
	"github.com/automoto/badmonkey/components"
	"github.com/automoto/badmonkey/shared/messages"
)

// CueEvents turns broadcast cues back into the events the local
// collaborators consume.
func CueEvents(cues []messages.CueEvent) []components.Event {
	if len(cues) == 0 {
		return nil
	}
	out := make([]components.Event, 0, len(cues))
	for _, c := range cues {
		out = append(out, components.Event{
			Kind:   components.EventKind(c.Kind),
			Source: c.Source,
			Target: c.Target,
			X:      c.X,
			Y:      c.Y,
			Amount: c.Amount,
			Text:   c.Text,
		})
	}
	return out
}
