package pool

import "sync"

// BufferPool implements a pool of byte slices for efficient memory reuse
// by the normalizers.
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified initial capacity.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse.
func (bp *BufferPool) Put(buffer *[]byte) {
	// Reset buffer length but keep capacity
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// RowPool implements a pool of int slices used as dynamic-programming rows
// by the LCS engine. Rows returned by Get are not zeroed; callers reset them.
type RowPool struct {
	pool sync.Pool
	size int
}

// NewRowPool creates a new pool of int slices with the specified initial capacity.
func NewRowPool(size int) *RowPool {
	return &RowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]int, 0, size)
				return &row
			},
		},
		size: size,
	}
}

// Get retrieves a row from the pool.
func (rp *RowPool) Get() *[]int {
	return rp.pool.Get().(*[]int)
}

// Put returns a row to the pool.
func (rp *RowPool) Put(row *[]int) {
	*row = (*row)[:0]
	rp.pool.Put(row)
}
