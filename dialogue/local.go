package dialogue

import "context"

// Local answers every request immediately with the keyword heuristic. It
// is used by headless runs and tests, and whenever no endpoint is set.
type Local struct {
	rules Rules
	ch    chan Response
}

func NewLocal(rules Rules) *Local {
	return &Local{
		rules: rules,
		ch:    make(chan Response, 8),
	}
}

func (l *Local) Request(_ context.Context, req Request) {
	resp := l.rules.Fallback(req, nil)
	resp.Fallback = false
	select {
	case l.ch <- resp:
	default:
		// drop the oldest so the newest request is always answerable
		select {
		case <-l.ch:
		default:
		}
		l.ch <- resp
	}
}

func (l *Local) Responses() <-chan Response {
	return l.ch
}
