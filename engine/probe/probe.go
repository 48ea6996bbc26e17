package probe

import (
	"context"
	"errors"
	"net"
	"syscall"
	"time"

	"github.com/mcstatus-io/mcutil/v3"
	"github.com/mcstatus-io/mcutil/v3/options"

	"github.com/craftchat/craftchat/engine/infra/monitoring"
	"github.com/craftchat/craftchat/pkg/logger"
)

// Prober performs one synchronous status query against a game server.
type Prober interface {
	Status(ctx context.Context, host string, port int, timeout time.Duration) StatusResult
}

// Client queries Java Edition servers through mcutil. It never returns an
// error: every failure is folded into an offline StatusResult so callers
// have exactly two outcomes to handle.
type Client struct{}

// NewClient creates a status probe client.
func NewClient() *Client {
	return &Client{}
}

// Status performs a single status query bounded by timeout. The timeout is
// the caller's; no retries are attempted.
func (c *Client) Status(ctx context.Context, host string, port int, timeout time.Duration) StatusResult {
	log := logger.FromContext(ctx)
	queryCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	resp, err := mcutil.Status(queryCtx, host, uint16(port), options.JavaStatus{
		EnableSRV: true,
		Timeout:   timeout,
	})
	if err != nil {
		msg := classifyError(err, host, timeout)
		log.Debug("Status probe failed", "host", host, "port", port, "error", msg)
		monitoring.ProbeResultsTotal.WithLabelValues("offline").Inc()
		return StatusResult{Online: false, Error: msg}
	}
	monitoring.ProbeResultsTotal.WithLabelValues("online").Inc()
	latency := time.Since(start)

	result := StatusResult{
		Online:          true,
		Version:         resp.Version.NameClean,
		ProtocolVersion: resp.Version.Protocol,
		MOTD:            resp.MOTD.Clean,
		LatencyMs:       float64(latency.Microseconds()) / 1000.0,
	}
	if resp.Players.Online != nil {
		result.PlayerCount = *resp.Players.Online
	}
	if resp.Players.Max != nil {
		result.PlayerMax = *resp.Players.Max
	}
	log.Debug("Status probe succeeded",
		"host", host, "port", port,
		"version", result.Version, "players", result.PlayerRatio(),
		"latency_ms", result.LatencyMs)
	return result
}

// classifyError maps transport failures to the human-readable messages the
// chat prompt and the UI surface.
func classifyError(err error, host string, timeout time.Duration) string {
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr):
		return "Server address '" + host + "' could not be resolved."
	case errors.Is(err, syscall.ECONNREFUSED):
		return "Connection refused."
	case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
		return "Connection timed out after " + timeout.String() + "."
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unknown error occurred while trying to reach the server."
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
