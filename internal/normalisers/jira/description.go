package jira

import (
	"bytes"
	"encoding/json"
)

// DescriptionPlaceholder is emitted when an issue has no usable
// description in either format.
const DescriptionPlaceholder = "No description provided"

// adfBody is the subset of a rich-text (ADF) document the extractor
// reads: the first text segment of the first content block.
type adfBody struct {
	Content []struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"content"`
}

// descriptionExtractor attempts to read a description out of the raw
// field. It reports false when the format does not apply.
type descriptionExtractor func(raw json.RawMessage) (string, bool)

// The extractors encode the remote's dual description formats and are
// tried in order: rich-text body first, then the legacy plain string.
var descriptionExtractors = []descriptionExtractor{
	richTextDescription,
	plainDescription,
}

// DescriptionText resolves an issue description with a three-level
// fallback: rich-text body, plain string field, fixed placeholder.
func DescriptionText(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return DescriptionPlaceholder
	}
	for _, extract := range descriptionExtractors {
		if text, ok := extract(raw); ok {
			return text
		}
	}
	return DescriptionPlaceholder
}

// richTextDescription reads content[0].content[0].text from an ADF
// document. A document whose first block holds no text does not resolve.
func richTextDescription(raw json.RawMessage) (string, bool) {
	var body adfBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", false
	}
	if len(body.Content) == 0 || len(body.Content[0].Content) == 0 {
		return "", false
	}
	text := body.Content[0].Content[0].Text
	if text == "" {
		return "", false
	}
	return text, true
}

// plainDescription reads the field as a legacy plain string.
func plainDescription(raw json.RawMessage) (string, bool) {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", false
	}
	if text == "" {
		return "", false
	}
	return text, true
}
