package collector

import (
	"bytes"
)

// LimitedBuffer is a buffer that only writes up to a certain size
// and marks itself as truncated if the size is exceeded.
type LimitedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

// NewLimitedBuffer creates a new LimitedBuffer with the given size limit.
func NewLimitedBuffer(limit int) *LimitedBuffer {
	return &LimitedBuffer{
		limit: limit,
	}
}

// Write implements io.Writer.
// Data beyond the limit is dropped, but the full length of p is reported as
// written so writers never fail because of the limit.
func (b *LimitedBuffer) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.truncated {
		return len(p), nil
	}

	remaining := b.limit - b.buf.Len()
	if remaining <= 0 {
		b.truncated = true
		return len(p), nil
	}

	if len(p) > remaining {
		_, err = b.buf.Write(p[:remaining])
		b.truncated = true
		return len(p), err
	}

	return b.buf.Write(p)
}

// Remaining returns the number of bytes that can still be written before the
// buffer truncates.
func (b *LimitedBuffer) Remaining() int {
	return max(b.limit-b.buf.Len(), 0)
}

// IsTruncated returns true if the buffer was truncated due to size limit.
func (b *LimitedBuffer) IsTruncated() bool {
	return b.truncated
}

func (b *LimitedBuffer) Len() int {
	return b.buf.Len()
}

// Reset resets the buffer to be empty and not truncated.
func (b *LimitedBuffer) Reset() {
	b.buf.Reset()
	b.truncated = false
}

// String returns the buffered data without anything dropped by truncation.
func (b *LimitedBuffer) String() string {
	return b.buf.String()
}

// Bytes returns the buffered data. The slice aliases the buffer content and is
// only valid until the next write.
func (b *LimitedBuffer) Bytes() []byte {
	return b.buf.Bytes()
}
