package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/louisbranch/im-hungry/internal/id"
	apperrors "github.com/louisbranch/im-hungry/internal/platform/errors"
	"github.com/louisbranch/im-hungry/internal/platform/logging"
	"github.com/louisbranch/im-hungry/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// InvocationIDMetaKey names the invocation id in tool result metadata.
const InvocationIDMetaKey = "x-im-hungry-invocation-id"

// ToolCallMetadata carries correlation identifiers for MCP tool calls.
type ToolCallMetadata struct {
	InvocationID string
}

// NewInvocationID generates an invocation identifier for a tool call.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
// Content is left empty so the SDK fills it with the structured output.
func CallToolResultWithMetadata(meta ToolCallMetadata) *mcp.CallToolResult {
	result := &mcp.CallToolResult{}
	if meta.InvocationID != "" {
		result.Meta = map[string]any{InvocationIDMetaKey: meta.InvocationID}
	}
	return result
}

// CallToolResultWithJSONText builds a tool result whose text content is the
// JSON of payload rather than of the structured output. List tools use it to
// keep a bare array on the text channel while the structured output stays an
// object.
func CallToolResultWithJSONText(meta ToolCallMetadata, payload any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal tool text: %w", err)
	}
	result := CallToolResultWithMetadata(meta)
	result.Content = []mcp.Content{&mcp.TextContent{Text: string(data)}}
	return result, nil
}

// Invoker wraps every tool call with an invocation id, a timeout and a
// completion log line.
type Invoker struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

type toolInvocation struct {
	Tool         string
	InvocationID string
	RunCtx       context.Context
	Cancel       context.CancelFunc

	logger  *slog.Logger
	started time.Time
}

func (i Invoker) start(ctx context.Context, tool string) (*toolInvocation, error) {
	invocationID, err := NewInvocationID()
	if err != nil {
		return nil, fmt.Errorf("generate invocation id: %w", err)
	}
	timeout := i.Timeout
	if timeout <= 0 {
		timeout = timeouts.ToolCall
	}
	logger := i.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	return &toolInvocation{
		Tool:         tool,
		InvocationID: invocationID,
		RunCtx:       runCtx,
		Cancel:       cancel,
		logger:       logger.With("tool", tool, "invocation_id", invocationID),
		started:      time.Now(),
	}, nil
}

// finish releases the call context, logs the outcome and returns the error
// the client should see.
func (c *toolInvocation) finish(err error) error {
	deadlineHit := c.RunCtx.Err() == context.DeadlineExceeded
	c.Cancel()
	elapsed := time.Since(c.started)
	if err == nil {
		c.logger.Info("tool call completed", "duration", elapsed)
		return nil
	}
	if deadlineHit && errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.Wrap(apperrors.CodeProviderFailure, c.Tool+" timed out", err)
	}
	c.logger.Warn("tool call failed",
		"duration", elapsed,
		"code", string(apperrors.CodeOf(err)),
		"error", err,
	)
	return err
}

func (c *toolInvocation) metadata() ToolCallMetadata {
	return ToolCallMetadata{InvocationID: c.InvocationID}
}
