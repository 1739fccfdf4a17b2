// Copyright (c) ClaireAI. All rights reserved.

package claire

// PartType is the wire discriminator of a content [Part].
type PartType string

const (
	PartTypeText  PartType = "input_text"
	PartTypeImage PartType = "input_image"
)

// ImageDetail is the requested fidelity for an [ImagePart].
type ImageDetail string

const (
	ImageDetailLow  ImageDetail = "low"
	ImageDetailHigh ImageDetail = "high"
	ImageDetailAuto ImageDetail = "auto"
)

// Part is a sealed interface for one element of a multi-part [Message].
// Use a type switch to inspect the underlying type.
type Part interface {
	// Type returns the wire discriminator for this part.
	Type() PartType

	sealed()
}

type base struct{}

func (base) sealed() {}

// TextPart holds plain text.
type TextPart struct {
	base `validate:"-"`
	Text string
}

func (p *TextPart) Type() PartType { return PartTypeText }

// ImagePart references an image by URL. Detail is optional.
type ImagePart struct {
	base `validate:"-"`
	URL    string      `validate:"required"`
	Detail ImageDetail `validate:"omitempty,oneof=low high auto"`
}

func (p *ImagePart) Type() PartType { return PartTypeImage }

// Parts is a typed slice enabling JSON marshal/unmarshal of polymorphic parts.
type Parts []Part

func validatePart(p Part) error {
	switch v := p.(type) {
	case *TextPart:
		if v == nil {
			return errNilPart
		}
		return nil
	case *ImagePart:
		if v == nil {
			return errNilPart
		}
		return validate().Struct(v)
	default:
		return errNilPart
	}
}
