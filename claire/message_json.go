// Copyright (c) ClaireAI. All rights reserved.

package claire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire returns the sparse wire mapping of the message: only "role" and
// "content" are present, content being the text or a list of part mappings.
func (m Message) Wire() map[string]any {
	if !m.IsMultipart() {
		return map[string]any{"role": string(m.Role), "content": m.Text}
	}
	parts := make([]map[string]any, 0, len(m.Parts))
	for _, p := range m.Parts {
		if w := partWire(p); w != nil {
			parts = append(parts, w)
		}
	}
	return map[string]any{"role": string(m.Role), "content": parts}
}

// partWire maps a part to its wire mapping, omitting unset optional fields.
func partWire(p Part) map[string]any {
	switch v := p.(type) {
	case *TextPart:
		if v == nil {
			return nil
		}
		return map[string]any{"type": string(PartTypeText), "text": v.Text}
	case *ImagePart:
		if v == nil {
			return nil
		}
		w := map[string]any{"type": string(PartTypeImage), "image_url": v.URL}
		if v.Detail != "" {
			w["detail"] = string(v.Detail)
		}
		return w
	default:
		return nil
	}
}

// MarshalJSON encodes the message in its wire form.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Wire())
}

// UnmarshalJSON decodes a wire-form message. Content may be a string or a list
// of parts; unknown part types are rejected with [ErrValidation].
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    Role            `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}

	msg := Message{Role: raw.Role}
	content := bytes.TrimSpace(raw.Content)
	switch {
	case len(content) == 0 || bytes.Equal(content, []byte("null")):
	case content[0] == '"':
		if err := json.Unmarshal(content, &msg.Text); err != nil {
			return fmt.Errorf("unmarshal message content: %w", err)
		}
	case content[0] == '[':
		if err := json.Unmarshal(content, &msg.Parts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: message content must be a string or a list of parts", ErrValidation)
	}

	if err := msg.Validate(); err != nil {
		return err
	}
	*m = msg
	return nil
}

// MarshalPartJSON marshals a single part into its wire object.
func MarshalPartJSON(p Part) ([]byte, error) {
	w := partWire(p)
	if w == nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errNilPart)
	}
	return json.Marshal(w)
}

// UnmarshalPartJSON unmarshals a single part using its "type" discriminator.
func UnmarshalPartJSON(data []byte) (Part, error) {
	var env struct {
		Type PartType `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal part envelope: %w", err)
	}

	var part Part
	switch env.Type {
	case PartTypeText:
		var v struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		part = &TextPart{Text: v.Text}

	case PartTypeImage:
		var v struct {
			ImageURL string      `json:"image_url"`
			Detail   ImageDetail `json:"detail"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		part = &ImagePart{URL: v.ImageURL, Detail: v.Detail}

	default:
		return nil, fmt.Errorf("%w: unknown part type %q", ErrValidation, env.Type)
	}

	if err := validatePart(part); err != nil {
		return nil, fmt.Errorf("%w: %s part: %v", ErrValidation, env.Type, err)
	}
	return part, nil
}

// MarshalJSON serializes each part using its "type" discriminator.
func (ps Parts) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, len(ps))
	for i, p := range ps {
		b, err := MarshalPartJSON(p)
		if err != nil {
			return nil, fmt.Errorf("marshal part[%d]: %w", i, err)
		}
		items[i] = b
	}
	return json.Marshal(items)
}

// UnmarshalJSON deserializes a JSON array of parts.
func (ps *Parts) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	result := make(Parts, len(raw))
	for i, r := range raw {
		p, err := UnmarshalPartJSON(r)
		if err != nil {
			return fmt.Errorf("unmarshal part[%d]: %w", i, err)
		}
		result[i] = p
	}
	*ps = result
	return nil
}
