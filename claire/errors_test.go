// Copyright (c) ClaireAI. All rights reserved.

package claire_test

import (
	"errors"
	"testing"

	"github.com/claireai/claire-go/claire"
)

func TestErrorSentinelChain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		match  bool
	}{
		{"ErrContentFilter wraps ErrService", claire.ErrContentFilter, claire.ErrService, true},
		{"ErrAuth wraps ErrService", claire.ErrAuth, claire.ErrService, true},
		{"ErrRateLimit wraps ErrService", claire.ErrRateLimit, claire.ErrService, true},
		{"ErrInvalidRequest wraps ErrService", claire.ErrInvalidRequest, claire.ErrService, true},
		{"ErrInvalidResponse wraps ErrService", claire.ErrInvalidResponse, claire.ErrService, true},
		{"ErrUnknownProvider wraps ErrConfig", claire.ErrUnknownProvider, claire.ErrConfig, true},
		{"ErrValidation does not wrap ErrService", claire.ErrValidation, claire.ErrService, false},
		{"ErrTool does not wrap ErrConfig", claire.ErrTool, claire.ErrConfig, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.target); got != tc.match {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tc.err, tc.target, got, tc.match)
			}
		})
	}
}

func TestServiceError(t *testing.T) {
	svcErr := &claire.ServiceError{
		StatusCode: 429,
		Message:    "rate limited",
		Code:       "rate_limit_exceeded",
		Err:        claire.ErrRateLimit,
	}

	if msg := svcErr.Error(); msg != "service error 429 (rate_limit_exceeded): rate limited" {
		t.Errorf("Error() = %q", msg)
	}
	if !errors.Is(svcErr, claire.ErrService) {
		t.Error("ServiceError should transitively wrap ErrService")
	}

	var extracted *claire.ServiceError
	if !errors.As(svcErr, &extracted) {
		t.Fatal("errors.As should extract ServiceError")
	}
	if extracted.StatusCode != 429 {
		t.Errorf("StatusCode = %d", extracted.StatusCode)
	}
}

func TestToolError(t *testing.T) {
	toolErr := &claire.ToolError{ToolName: "get_weather", Message: "bad args", Err: claire.ErrTool}

	if !errors.Is(toolErr, claire.ErrTool) {
		t.Error("ToolError should wrap ErrTool")
	}
	var extracted *claire.ToolError
	if !errors.As(toolErr, &extracted) {
		t.Fatal("errors.As should extract ToolError")
	}
	if extracted.ToolName != "get_weather" {
		t.Errorf("ToolName = %q", extracted.ToolName)
	}
}
