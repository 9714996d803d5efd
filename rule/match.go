package rule

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// MatchBytes applies a byte rule to a whole input slice, starting at
// the first byte.
func MatchBytes(r Rule[byte], input []byte) Result {
	return r.Match(input, 0)
}

// MatchString applies a rune rule to the runes of s, starting at the
// first rune. Besides the Result it returns the matched span as a
// string ("" for a failed match). Positions in the Result are rune
// indices, not byte offsets.
func MatchString(r Rule[rune], s string) (Result, string) {
	buf := borrowBuffer()
	defer buf.release()
	for _, c := range s {
		buf.runes = append(buf.runes, c)
	}
	res := r.Match(buf.runes, 0)
	if !res.Matched {
		return res, ""
	}
	return res, string(buf.runes[res.Start:res.Position])
}

// Match buffers hold the decoded runes for one MatchString call. They
// are short-lived objects; to avoid multiple allocation of buffers we
// will pool them.
type matchBuffer struct {
	runes []rune
}

type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := &matchBuffer{}
			return buf, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

func borrowBuffer() *matchBuffer {
	o, _ := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	return o.(*matchBuffer)
}

// Clears the buffer and puts it back into the pool.
func (buf *matchBuffer) release() {
	buf.runes = buf.runes[:0]
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
