package sse_test

import (
	"errors"
	"io"
	"testing"

	// Packages
	sse "github.com/mckinsey/ark-go/pkg/sse"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// scriptedReader replays a fixed sequence of reads, then io.EOF or the
// configured error, and counts how many times it is closed.
type scriptedReader struct {
	chunks  [][]byte
	index   int
	readErr error
	closed  int
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if r.index < len(r.chunks) {
		n := copy(p, r.chunks[r.index])
		r.index++
		return n, nil
	}
	if r.readErr != nil {
		return 0, r.readErr
	}
	return 0, io.EOF
}

func (r *scriptedReader) Close() error {
	r.closed++
	return nil
}

// drain consumes the stream to io.EOF and returns the chunks observed.
func drain(t *testing.T, s *sse.Stream) []string {
	t.Helper()
	var chunks []string
	for {
		chunk, err := s.Next()
		if err == io.EOF {
			return chunks
		}
		if err != nil {
			t.Fatal(err)
		}
		chunks = append(chunks, string(chunk))
	}
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_stream_001(t *testing.T) {
	// A record split across two reads is reassembled into one chunk
	assert := assert.New(t)
	r := &scriptedReader{chunks: [][]byte{
		[]byte(`data: {"con`),
		[]byte("tent\":\"Hello\"}\n\n"),
	}}
	s := sse.NewStream(r)

	chunks := drain(t, s)
	assert.Len(chunks, 1)
	assert.JSONEq(`{"content":"Hello"}`, chunks[0])
}

func Test_stream_002(t *testing.T) {
	// Chunks arrive in stream order and the [DONE] record is excluded
	assert := assert.New(t)
	r := &scriptedReader{chunks: [][]byte{
		[]byte("data: {\"seq\":1}\n\ndata: {\"seq\":2}\n\ndata: [DONE]\n\n"),
	}}
	s := sse.NewStream(r)

	chunks := drain(t, s)
	assert.Equal([]string{`{"seq":1}`, `{"seq":2}`}, chunks)
}

func Test_stream_003(t *testing.T) {
	// Unterminated trailing content is discarded at end of input
	assert := assert.New(t)
	r := &scriptedReader{chunks: [][]byte{
		[]byte("data: {\"seq\":1}\n\ndata: {\"seq\""),
	}}
	s := sse.NewStream(r)

	chunks := drain(t, s)
	assert.Equal([]string{`{"seq":1}`}, chunks)
}

func Test_stream_004(t *testing.T) {
	// Malformed and non-data lines within records are dropped
	assert := assert.New(t)
	r := &scriptedReader{chunks: [][]byte{
		[]byte("event: message\ndata: {\"seq\":1}\n\ndata: {oops}\n\ndata: {\"seq\":2}\n\n"),
	}}
	s := sse.NewStream(r)

	chunks := drain(t, s)
	assert.Equal([]string{`{"seq":1}`, `{"seq":2}`}, chunks)
}

func Test_stream_005(t *testing.T) {
	// The reader is released exactly once when the stream ends normally
	assert := assert.New(t)
	r := &scriptedReader{chunks: [][]byte{[]byte("data: {\"seq\":1}\n\n")}}
	s := sse.NewStream(r)

	drain(t, s)
	assert.Equal(1, r.closed)
	assert.NoError(s.Close())
	assert.Equal(1, r.closed)
}

func Test_stream_006(t *testing.T) {
	// Early termination by the consumer still releases the reader once
	assert := assert.New(t)
	r := &scriptedReader{chunks: [][]byte{
		[]byte("data: {\"seq\":1}\n\ndata: {\"seq\":2}\n\n"),
	}}
	s := sse.NewStream(r)

	chunk, err := s.Next()
	assert.NoError(err)
	assert.JSONEq(`{"seq":1}`, string(chunk))

	assert.NoError(s.Close())
	assert.NoError(s.Close())
	assert.Equal(1, r.closed)
}

func Test_stream_007(t *testing.T) {
	// A read error propagates to the consumer and releases the reader
	assert := assert.New(t)
	readErr := errors.New("connection reset")
	r := &scriptedReader{
		chunks:  [][]byte{[]byte("data: {\"seq\":1}\n\n")},
		readErr: readErr,
	}
	s := sse.NewStream(r)

	chunk, err := s.Next()
	assert.NoError(err)
	assert.JSONEq(`{"seq":1}`, string(chunk))

	_, err = s.Next()
	assert.ErrorIs(err, readErr)
	assert.Equal(1, r.closed)

	// The error is sticky
	_, err = s.Next()
	assert.ErrorIs(err, readErr)
}

func Test_stream_008(t *testing.T) {
	// After EOF subsequent calls keep returning EOF
	assert := assert.New(t)
	r := &scriptedReader{}
	s := sse.NewStream(r)

	_, err := s.Next()
	assert.ErrorIs(err, io.EOF)
	_, err = s.Next()
	assert.ErrorIs(err, io.EOF)
	assert.Equal(1, r.closed)
}
