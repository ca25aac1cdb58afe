package sse

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"sync"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Stream is a pull-based decoder over an SSE byte stream. It is
// single-pass and forward-only: each call to Next returns the next data
// chunk in stream order, io.EOF at end of input, or the underlying read
// error. The reader is released exactly once on every exit path,
// including early termination by the consumer.
type Stream struct {
	r         io.ReadCloser
	buf       bytes.Buffer
	pending   []json.RawMessage
	err       error
	closeOnce sync.Once
	closeErr  error
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewStream wraps a reader producing SSE bytes. The stream takes
// ownership of the reader and closes it when consumption ends.
func NewStream(r io.ReadCloser) *Stream {
	return &Stream{r: r}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Next returns the next data chunk. Records are extracted whenever the
// internal buffer contains a complete "\n\n"-terminated record; bytes
// of a record are accumulated raw, so multi-byte sequences split across
// reads are reassembled before any decoding happens. At end of input
// any unterminated trailing content is discarded and io.EOF is
// returned. After an error or EOF all subsequent calls return the same
// result.
func (s *Stream) Next() (json.RawMessage, error) {
	for {
		// Drain chunks decoded from earlier reads first
		if len(s.pending) > 0 {
			chunk := s.pending[0]
			s.pending = s.pending[1:]
			return chunk, nil
		}
		// Extract every complete record currently buffered
		for {
			record, rest, found := bytes.Cut(s.buf.Bytes(), []byte(recordSeparator))
			if !found {
				break
			}
			chunks := parseRecord(string(record))
			s.buf = *bytes.NewBuffer(append([]byte(nil), rest...))
			s.pending = append(s.pending, chunks...)
		}
		if len(s.pending) > 0 {
			continue
		}
		if s.err != nil {
			return nil, s.err
		}

		// Read more bytes; one read at a time, never concurrent
		var chunk [4096]byte
		n, err := s.r.Read(chunk[:])
		if n > 0 {
			s.buf.Write(chunk[:n])
		}
		if err != nil {
			// On io.EOF any trailing unterminated content is dropped
			s.err = err
			s.Close()
		}
	}
}

// Close releases the underlying reader. It is safe to call more than
// once and after Next has returned io.EOF or an error; the reader is
// closed exactly once.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.r.Close()
	})
	return s.closeErr
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// parseRecord splits one record into lines and collects the non-nil
// results of parsing each line, preserving order.
func parseRecord(record string) []json.RawMessage {
	var chunks []json.RawMessage
	for _, line := range strings.Split(record, "\n") {
		if chunk := ParseLine(line); chunk != nil {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
