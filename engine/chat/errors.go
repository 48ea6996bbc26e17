package chat

import "errors"

var (
	// ErrEmptyMessage indicates the request carried no message text.
	ErrEmptyMessage = errors.New("no message content provided")

	// ErrNoAPIKey indicates no LLM credential is configured, so the chat
	// service cannot run at all. Distinct from a transient LLM failure.
	ErrNoAPIKey = errors.New("no API key configured")
)

// LLMError wraps any failure reported by the LLM collaborator. The
// orchestrator cannot recover from these; it reports the collaborator's
// message verbatim.
type LLMError struct {
	Err error
}

func (e *LLMError) Error() string {
	return e.Err.Error()
}

func (e *LLMError) Unwrap() error {
	return e.Err
}
