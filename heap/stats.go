package heap

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a snapshot of a heap's accounting.
type Stats struct {
	Used   int64 // live bytes
	Peak   int64 // high-water mark of live bytes
	Limit  int64 // 0 means unlimited
	Allocs int64 // successful allocations, including those done by Realloc
	Frees  int64
}

func (s Stats) String() string {
	limit := "unlimited"
	if s.Limit > 0 {
		limit = humanize.Bytes(uint64(s.Limit))
	}
	return fmt.Sprintf("used=%s peak=%s limit=%s allocs=%d frees=%d",
		humanize.Bytes(uint64(s.Used)), humanize.Bytes(uint64(s.Peak)), limit, s.Allocs, s.Frees)
}
