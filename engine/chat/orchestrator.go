package chat

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/craftchat/craftchat/engine/llm"
	"github.com/craftchat/craftchat/engine/mcserver"
	"github.com/craftchat/craftchat/engine/probe"
	"github.com/craftchat/craftchat/pkg/logger"
)

// Input is one chat request. ServerID optionally carries a string-encoded
// index into the registry list.
type Input struct {
	Message  string
	ServerID string
}

// Output is the result of one chat turn. ServerDataUsed is nil when no
// probe was performed.
type Output struct {
	Reply          string
	ServerDataUsed *probe.StatusResult
}

// Orchestrator runs one chat turn: it resolves the optional server
// selection against the registry, probes the server's live status, builds
// a context-augmented prompt and performs a single LLM call. Nothing is
// retried and nothing is kept between requests.
type Orchestrator struct {
	registry    *mcserver.Registry
	prober      probe.Prober
	llmFactory  llm.Factory
	chatTimeout time.Duration
}

// NewOrchestrator wires the orchestrator's collaborators. chatTimeout
// bounds the probe issued during a chat turn; it is shorter than the
// registry's default probe timeout so an unreachable game server cannot
// stall the reply for long.
func NewOrchestrator(
	registry *mcserver.Registry,
	prober probe.Prober,
	llmFactory llm.Factory,
	chatTimeout time.Duration,
) *Orchestrator {
	return &Orchestrator{
		registry:    registry,
		prober:      prober,
		llmFactory:  llmFactory,
		chatTimeout: chatTimeout,
	}
}

// Execute runs one chat turn. Failures are reported as ErrEmptyMessage,
// ErrNoAPIKey or *LLMError; a failed probe is not a failure, it becomes
// offline context in the prompt.
func (o *Orchestrator) Execute(ctx context.Context, input *Input) (*Output, error) {
	log := logger.FromContext(ctx)
	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrEmptyMessage
	}
	apiKey := o.registry.APIKey()
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	promptContext, status := o.resolveServerContext(ctx, input.ServerID)
	userContent := buildUserContent(promptContext, input.Message)

	client, err := o.llmFactory(apiKey)
	if err != nil {
		return nil, &LLMError{Err: err}
	}
	reply, err := client.Generate(ctx, systemPrompt, userContent)
	if err != nil {
		log.Error("LLM call failed", "error", err)
		return nil, &LLMError{Err: err}
	}
	log.Info("Chat turn completed", "server_selected", input.ServerID != "", "probe_used", status != nil)
	return &Output{Reply: reply, ServerDataUsed: status}, nil
}

// resolveServerContext turns the optional selection into prompt context.
// A blank selection means a general question and skips the probe. A
// selection that does not parse or is out of range also skips the probe
// and is noted as invalid in the prompt.
func (o *Orchestrator) resolveServerContext(ctx context.Context, serverID string) (string, *probe.StatusResult) {
	log := logger.FromContext(ctx)
	serverID = strings.TrimSpace(serverID)
	if serverID == "" {
		return "", nil
	}
	index, err := strconv.Atoi(serverID)
	if err != nil {
		log.Warn("Chat request carried a non-numeric server selection", "server_id", serverID)
		return invalidSelectionNote, nil
	}
	cfg, err := o.registry.Get(index)
	if err != nil {
		log.Warn("Chat request selected an unknown server", "index", index)
		return invalidSelectionNote, nil
	}
	result := o.prober.Status(ctx, cfg.Host, cfg.Port, o.chatTimeout)
	return serverContext(cfg, result), &result
}
