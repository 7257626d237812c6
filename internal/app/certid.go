package app

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// certIDSource mints CS-<base36> certificate ids from a strictly increasing
// nanosecond counter. The monotonic guard keeps rapid sequential mints unique
// within a process; the database uniqueness constraints remain the backstop.
type certIDSource struct {
	mu   sync.Mutex
	last int64
}

func (g *certIDSource) next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := now.UnixNano()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return "CS-" + strings.ToUpper(strconv.FormatInt(n, 36))
}
