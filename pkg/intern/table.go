package intern

import (
	"math"
	"sync"
	"sync/atomic"
)

const (
	blockShift = 10
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
)

type block [blockSize]string

// blockTable is an append-only handle to string table. Content lives in fixed
// blocks behind an atomically published spine: append stores the slot before
// publishing the new count, lookup loads the count before reading the slot,
// so lookups never take a lock.
type blockTable struct {
	mtx    sync.Mutex
	count  atomic.Uint64
	blocks atomic.Pointer[[]*block]
}

func (t *blockTable) init() {
	t.blocks.Store(&[]*block{})
}

// append stores s and returns the handle assigned to it.
func (t *blockTable) append(s string) Handle {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	n := t.count.Load()
	if n > math.MaxUint32 {
		panic("intern: handle space exhausted")
	}
	bi, si := n>>blockShift, n&blockMask
	blocks := *t.blocks.Load()
	if int(bi) == len(blocks) {
		grown := make([]*block, len(blocks)+1)
		copy(grown, blocks)
		grown[len(blocks)] = new(block)
		t.blocks.Store(&grown)
		blocks = grown
	}
	blocks[bi][si] = s
	t.count.Store(n + 1)
	return Handle(n)
}

// lookup returns the content for h, or ok=false if h has not been assigned.
func (t *blockTable) lookup(h Handle) (string, bool) {
	if uint64(h) >= t.count.Load() {
		return "", false
	}
	blocks := *t.blocks.Load()
	return blocks[h>>blockShift][h&blockMask], true
}

func (t *blockTable) len() uint64 {
	return t.count.Load()
}
