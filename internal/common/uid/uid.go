package uid

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
)

// Generator issues identifiers that are unique for the lifetime of the
// process. The wall-clock part keeps ids roughly sortable; the counter makes
// two calls within the same millisecond distinct.
type Generator struct {
	seq atomic.Uint64
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock is for tests that need a frozen wall clock.
func NewWithClock(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns "<prefix>-<ms base36>-<seq>".
func (g *Generator) Next(prefix string) string {
	n := g.seq.Add(1)
	ms := g.now().UnixMilli()
	return fmt.Sprintf("%s-%s-%s", prefix, strconv.FormatInt(ms, 36), strconv.FormatUint(n, 36))
}
