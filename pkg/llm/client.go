// Package llm provides the chat-completion client used by every workflow.
// The endpoint is treated as an opaque collaborator: one synchronous call
// in, one text completion out.
package llm

import (
	"context"
)

// Message roles in a chat completion conversation
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

// Request is a single chat-completion request. Each workflow step issues
// exactly one: no retry, no streaming, no partial output.
type Request struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Messages    []Message
}

// Response carries the completion text and token accounting.
type Response struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// Client is the interface for calling a chat-completion endpoint.
// Implemented by HTTPClient; workflow tests substitute deterministic stubs.
type Client interface {
	// Complete sends one request and blocks until the endpoint answers.
	Complete(ctx context.Context, req Request) (*Response, error)
}
