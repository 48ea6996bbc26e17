package probe

import "fmt"

// StatusResult is the normalized outcome of one status query. Exactly one
// of the two shapes is populated: Online=true with the server fields, or
// Online=false with Error set.
type StatusResult struct {
	Online          bool    `json:"online"`
	Version         string  `json:"version,omitempty"`
	ProtocolVersion int64   `json:"protocol_version,omitempty"`
	MOTD            string  `json:"motd,omitempty"`
	PlayerCount     int64   `json:"player_count"`
	PlayerMax       int64   `json:"player_max"`
	LatencyMs       float64 `json:"latency"`
	Error           string  `json:"error,omitempty"`
}

// PlayerRatio renders the current/max player counts, e.g. "5/20".
func (s StatusResult) PlayerRatio() string {
	return fmt.Sprintf("%d/%d", s.PlayerCount, s.PlayerMax)
}
