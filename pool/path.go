// Package pool holds the reusable buffers used to render element paths in
// conversion errors.
package pool

import (
	"strconv"
	"sync"
)

// PathBuilder renders FHIRPath style element paths such as
// "ConceptMap.group[0].element[2].target[0]".
type PathBuilder struct {
	buf []byte
}

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{buf: make([]byte, 0, 128)}
	},
}

// AcquirePathBuilder gets an empty PathBuilder from the pool.
func AcquirePathBuilder() *PathBuilder {
	pb := pathBuilderPool.Get().(*PathBuilder)
	pb.buf = pb.buf[:0]
	return pb
}

// Release returns the builder to the pool.
func (b *PathBuilder) Release() {
	if b == nil {
		return
	}
	if cap(b.buf) <= 2048 {
		pathBuilderPool.Put(b)
	}
}

// Element appends an element name, dot separated from what precedes it.
func (b *PathBuilder) Element(name string) {
	if len(b.buf) > 0 {
		b.buf = append(b.buf, '.')
	}
	b.buf = append(b.buf, name...)
}

// Index appends the position of a repeated element, e.g. "[3]". Negative
// positions are ignored.
func (b *PathBuilder) Index(i int) {
	if i < 0 {
		return
	}
	b.buf = append(b.buf, '[')
	b.buf = strconv.AppendInt(b.buf, int64(i), 10)
	b.buf = append(b.buf, ']')
}

// Len returns the length of the rendered path.
func (b *PathBuilder) Len() int {
	return len(b.buf)
}

func (b *PathBuilder) String() string {
	return string(b.buf)
}

// BuildPath renders a path with a pooled builder.
func BuildPath(fn func(*PathBuilder)) string {
	pb := AcquirePathBuilder()
	defer pb.Release()
	fn(pb)
	return pb.String()
}
