/*
sse decodes server-sent-event byte streams of the form used by
LLM-style chat completion APIs: records separated by a blank line, each
carrying one "data: <json>" payload, terminated by a "data: [DONE]"
sentinel.
*/
package sse

import (
	"encoding/json"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// dataPrefix introduces a data line within an SSE record.
	dataPrefix = "data:"

	// doneSentinel marks the end of the stream. It is consumed by the
	// parser and never surfaced as a chunk.
	doneSentinel = "[DONE]"

	// recordSeparator delimits records within the byte stream.
	recordSeparator = "\n\n"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParseLine decodes a single SSE line into a JSON chunk. It returns nil
// for anything which is not a data event: blank lines, non-data fields,
// the [DONE] sentinel and malformed JSON payloads are all dropped
// silently.
func ParseLine(line string) json.RawMessage {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	data, ok := strings.CutPrefix(line, dataPrefix)
	if !ok {
		return nil
	}
	data = strings.TrimSpace(data)
	if data == doneSentinel {
		return nil
	}
	if !json.Valid([]byte(data)) {
		return nil
	}
	return json.RawMessage(data)
}
