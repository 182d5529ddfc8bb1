package image

import "sync"

// Pool keeps scratch buffers for reuse, grouped by shape.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identically shaped buffers.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a pool that keeps at most maxPerBucket buffers of each
// shape. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buf),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of the given shape, reusing a pooled one when
// available.
func (p *Pool) Get(width, height int, format Format) (*Buf, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	if bucket := p.buckets[key]; len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf, nil
	}
	p.mu.Unlock()

	return NewBuf(width, height, format)
}

// GetCopy returns a pooled buffer holding a copy of src.
func (p *Pool) GetCopy(src *Buf) (*Buf, error) {
	buf, err := p.Get(src.width, src.height, src.format)
	if err != nil {
		return nil, err
	}
	CopyRect(buf, src, src.Rect())
	return buf, nil
}

// Put clears buf and keeps it for a later Get. Nil buffers and buffers
// beyond the bucket limit are dropped.
func (p *Pool) Put(buf *Buf) {
	if buf == nil || buf.IsEmpty() {
		return
	}
	buf.Clear()

	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of buffers currently held.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
