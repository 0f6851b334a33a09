package frame

import "sync"

// readerPool wraps a sync.Pool of *Reader so repeated short-lived
// connections don't each pay for fresh scratch buffers.
type readerPool struct {
	pool *sync.Pool
}

// ReaderPool is the package-wide pool of *Reader.
var ReaderPool = readerPool{pool: &sync.Pool{
	New: func() interface{} {
		return &Reader{}
	},
}}

// Get returns a Reader bound to src, reused from the pool if one is
// available.
func (rp *readerPool) Get(src ByteSource, lookup ExtraCRCLookup) *Reader {
	r := rp.pool.Get().(*Reader)
	r.Reset(src, lookup)
	return r
}

// Put returns r to the pool. The caller must not use r again
// afterwards.
func (rp *readerPool) Put(r *Reader) {
	rp.pool.Put(r)
}
