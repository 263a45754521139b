package report

import "bosstime/internal/estimate"

// Event records how one phase×category estimate was reached. T is the
// estimated clear time.
type Event struct {
	T       float64        `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

func solvedEvent(phase string, c estimate.Category, threshold float64, sol estimate.Solution) Event {
	payload := map[string]any{
		"phase":     phase,
		"category":  string(c),
		"threshold": threshold,
	}
	if sol.Lower != nil {
		payload["lower"] = *sol.Lower
	}
	if sol.Upper != nil {
		payload["upper"] = *sol.Upper
	}
	return Event{T: sol.Time, Type: string(sol.Branch), Payload: payload}
}
