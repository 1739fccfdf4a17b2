// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"fmt"
	"strings"
)

// Role identifies the author of a [Message].
type Role string

const (
	RoleSystem    Role = "system"
	RoleDeveloper Role = "developer"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single conversation turn. Content is either plain text (Parts
// empty) or an ordered sequence of [Part]s. Messages are built once per turn
// and not mutated afterwards.
type Message struct {
	Role  Role   `json:"role" validate:"required,oneof=system developer user assistant tool"`
	Text  string `json:"-"`
	Parts Parts  `json:"-"`
}

// IsMultipart reports whether the message carries a part sequence instead of text.
func (m Message) IsMultipart() bool { return len(m.Parts) > 0 }

// Content returns the message text. For multi-part messages it is the
// concatenation of all [TextPart]s.
func (m Message) Content() string {
	if !m.IsMultipart() {
		return m.Text
	}
	var b strings.Builder
	for _, p := range m.Parts {
		if tp, ok := p.(*TextPart); ok {
			b.WriteString(tp.Text)
		}
	}
	return b.String()
}

// Validate checks the role and every content part.
func (m Message) Validate() error {
	if err := validate().Struct(m); err != nil {
		return fmt.Errorf("%w: message: %v", ErrValidation, err)
	}
	for i, p := range m.Parts {
		if err := validatePart(p); err != nil {
			return fmt.Errorf("%w: message part %d: %v", ErrValidation, i, err)
		}
	}
	return nil
}

// NewSystemMessage creates a system-role [Message].
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Text: text}
}

// NewDeveloperMessage creates a developer-role [Message].
func NewDeveloperMessage(text string) Message {
	return Message{Role: RoleDeveloper, Text: text}
}

// NewUserMessage creates a user-role [Message] from a text string.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// NewUserPartsMessage creates a multi-part user [Message]. Parts are validated
// up front so a malformed part never reaches the wire.
func NewUserPartsMessage(parts ...Part) (Message, error) {
	m := Message{Role: RoleUser, Parts: parts}
	if err := m.Validate(); err != nil {
		return Message{}, err
	}
	return m, nil
}

// NewAssistantMessage creates an assistant-role [Message].
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text}
}

// NewToolMessage creates a tool-role [Message].
func NewToolMessage(text string) Message {
	return Message{Role: RoleTool, Text: text}
}

// PrependSystemPrompt inserts a system message at the beginning of the message
// list if prompt is non-empty and no system message already exists.
func PrependSystemPrompt(messages []Message, prompt string) []Message {
	if prompt == "" {
		return messages
	}
	for _, m := range messages {
		if m.Role == RoleSystem {
			return messages
		}
	}
	return append([]Message{NewSystemMessage(prompt)}, messages...)
}
