package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Buckets are sized for a tapping thumb: sustained 5 ops/sec with a burst of
// 10 absorbs rapid add/increment taps without letting a loop hammer the store.
const (
	visitorRate  = 5
	visitorBurst = 10
	visitorTTL   = 5 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// GetVisitor returns the limiter for the given client address, creating one
// on first sight.
func GetVisitor(addr string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[addr]
	if !exists {
		limiter := rate.NewLimiter(visitorRate, visitorBurst)
		visitors[addr] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartVisitorCleanupLoop evicts limiters for addresses idle longer than the
// TTL. Run it once from main.
func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for addr, v := range visitors {
			if time.Since(v.lastSeen) > visitorTTL {
				delete(visitors, addr)
			}
		}
		mu.Unlock()
	}
}

// CleanupAllVisitors resets every bucket.
func CleanupAllVisitors() {
	mu.Lock()
	defer mu.Unlock()
	visitors = make(map[string]*visitor)
}
