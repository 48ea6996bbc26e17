package chat

import (
	"fmt"

	"github.com/craftchat/craftchat/engine/mcserver"
	"github.com/craftchat/craftchat/engine/probe"
)

const systemPrompt = "You are a helpful assistant for Minecraft players and server " +
	"administrators. When live server context is provided with a question, use it to " +
	"answer. Otherwise answer the question generally."

const invalidSelectionNote = "The user selected a server that is not in the " +
	"configured server list, so no live status is available."

// serverContext renders the probe outcome as a natural-language paragraph
// that is prepended to the user's message.
func serverContext(cfg mcserver.ServerConfig, status probe.StatusResult) string {
	if status.Online {
		return fmt.Sprintf(
			"The user is asking about the Minecraft server %q (%s:%d). "+
				"Live status: online. Version: %s (protocol %d). MOTD: %q. "+
				"Players: %s. Latency: %.1fms.",
			cfg.Name, cfg.Host, cfg.Port,
			status.Version, status.ProtocolVersion, status.MOTD,
			status.PlayerRatio(), status.LatencyMs,
		)
	}
	return fmt.Sprintf(
		"The user is asking about the Minecraft server %q (%s:%d). "+
			"Live status: offline or unreachable. Error: %s",
		cfg.Name, cfg.Host, cfg.Port, status.Error,
	)
}

// buildUserContent prepends the context paragraph, when present, to the
// raw user message.
func buildUserContent(promptContext, message string) string {
	if promptContext == "" {
		return message
	}
	return promptContext + "\n\n" + message
}
