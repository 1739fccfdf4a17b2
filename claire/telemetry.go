// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"context"
	"log/slog"
	"time"
)

// LoggingMiddleware returns a [Middleware] that logs completion calls using slog.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next GenerateFunc) GenerateFunc {
		return func(ctx context.Context, call *Call) (*RawResponse, error) {
			start := time.Now()
			structured := call.Structure != nil
			logger.InfoContext(ctx, "llm call started",
				"message_count", len(call.Messages),
				"tool_count", len(call.Tools),
				"structured", structured,
			)

			resp, err := next(ctx, call)

			duration := time.Since(start)
			if err != nil {
				logger.ErrorContext(ctx, "llm call failed",
					"duration", duration,
					"error", err,
				)
				return nil, err
			}

			attrs := []any{
				"duration", duration,
				"completion_id", resp.CompletionID,
				"model", resp.Model,
				"finish_reason", resp.FinishReason,
				"tool_calls", len(resp.ToolCalls),
			}
			if u := resp.CompletionUsage; u != nil && u.TotalTokens != nil {
				attrs = append(attrs, "total_tokens", *u.TotalTokens)
			}
			logger.InfoContext(ctx, "llm call completed", attrs...)
			return resp, nil
		}
	}
}
