package codec

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Scratch16 is a reusable UTF-16 buffer. Scratch buffers are short-lived
// objects used on comparison hot paths; to avoid repeated allocation of
// buffers we pool them.
type Scratch16 struct {
	Buf []uint16
}

// maxPooledCap limits the size of buffers kept in the pool.
const maxPooledCap = 1 << 16

type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Scratch16{Buf: make([]uint16, 0, BufferPad)}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// BorrowUTF16 returns an empty pooled scratch buffer with a capacity of at
// least n code units. Clients should size n with one of the sizing helpers
// and must call Release when done.
func BorrowUTF16(n int) *Scratch16 {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow scratch buffer: %v", err)
		return &Scratch16{Buf: make([]uint16, 0, n)}
	}
	s := o.(*Scratch16)
	if cap(s.Buf) < n {
		s.Buf = make([]uint16, 0, n)
	}
	s.Buf = s.Buf[:0]
	return s
}

// Convert replaces the content of the scratch buffer with the UTF-16 form of
// str and returns it. The result is valid until the next call to Convert or
// Release.
func (s *Scratch16) Convert(str string) []uint16 {
	before := s.Buf[:0]
	s.Buf = AppendUTF16(before, str)
	if !Fits(before, s.Buf) {
		tracer().Debugf("scratch buffer grown from %d to %d code units", cap(before), cap(s.Buf))
	}
	return s.Buf
}

// Release clears the scratch buffer and puts it back into the pool.
func (s *Scratch16) Release() {
	if cap(s.Buf) > maxPooledCap {
		s.Buf = make([]uint16, 0, BufferPad)
	}
	s.Buf = s.Buf[:0]
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}
