package collector

import (
	"errors"
	"io"
	"sync"
)

// defaultMaxBodySize is the default maximum size for a single captured body
const defaultMaxBodySize = 1 * 1024 * 1024 // 1MB

// ErrBodyClosed is returned when reading from a Body after Close.
var ErrBodyClosed = errors.New("body already closed")

// Body wraps a request or response body and captures what is read from it,
// up to a size limit.
type Body struct {
	reader io.ReadCloser
	buffer *LimitedBuffer

	size            uint64
	isFullyCaptured bool
	closed          bool

	// readMu serializes access to reader between Read and Close
	readMu sync.Mutex
	mu     sync.RWMutex
}

// NewBody creates a Body capturing at most limit bytes of rc.
func NewBody(rc io.ReadCloser, limit uint64) *Body {
	if rc == nil {
		return nil
	}

	return &Body{
		reader: rc,
		buffer: NewLimitedBuffer(int(limit)),
	}
}

// Read reads from the original body while also capturing to the buffer
func (b *Body) Read(p []byte) (n int, err error) {
	b.readMu.Lock()
	defer b.readMu.Unlock()

	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return 0, ErrBodyClosed
	}

	n, err = b.reader.Read(p)

	b.mu.Lock()
	defer b.mu.Unlock()

	if n > 0 {
		_, _ = b.buffer.Write(p[:n])
		b.size += uint64(n)
	}
	if err == io.EOF {
		b.isFullyCaptured = true
	}

	return n, err
}

// Close reads what the application left unread (as far as the limit allows)
// and closes the original body.
func (b *Body) Close() error {
	b.readMu.Lock()
	defer b.readMu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	if !b.isFullyCaptured && !b.buffer.IsTruncated() {
		// One byte over the limit marks the buffer as truncated if more data follows
		n, err := io.Copy(b.buffer, io.LimitReader(b.reader, int64(b.buffer.Remaining())+1))
		b.size += uint64(n)
		if err == nil && !b.buffer.IsTruncated() {
			b.isFullyCaptured = true
		}
	}

	return b.reader.Close()
}

// String returns the captured content as a string
func (b *Body) String() string {
	if b == nil {
		return ""
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.buffer.String()
}

// Bytes returns a copy of the captured content
func (b *Body) Bytes() []byte {
	if b == nil {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]byte(nil), b.buffer.Bytes()...)
}

// Size returns the number of bytes read from the original body
func (b *Body) Size() uint64 {
	if b == nil {
		return 0
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.size
}

// IsTruncated returns true if the body was larger than the capture limit
func (b *Body) IsTruncated() bool {
	if b == nil {
		return false
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.buffer.IsTruncated()
}

// IsFullyCaptured returns true if the original body was read to the end
func (b *Body) IsFullyCaptured() bool {
	if b == nil {
		return false
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.isFullyCaptured
}
