package schema

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is one entry of a chat conversation. Content is either a
// plain string or an ordered sequence of ContentPart values; it is
// transmitted verbatim, the client does not interpret it.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one typed segment of a multimodal message.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL references an image by URL or data URI.
type ImageURL struct {
	URL string `json:"url"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Message role constants
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Content part type constants
const (
	PartText     = "text"
	PartImageURL = "image_url"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTextMessage creates a message with plain string content.
func NewTextMessage(role, text string) Message {
	return Message{Role: role, Content: text}
}

// NewTextPart creates a text content part.
func NewTextPart(text string) ContentPart {
	return ContentPart{Type: PartText, Text: text}
}

// NewImagePart creates an image reference content part.
func NewImagePart(url string) ContentPart {
	return ContentPart{Type: PartImageURL, ImageURL: &ImageURL{URL: url}}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
