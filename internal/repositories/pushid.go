package repositories

import (
	"crypto/rand"
	"sync"
	"time"
)

// pushChars is ordered by ASCII value so lexical key order matches creation order.
const pushChars = "-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

// PushKeyGenerator produces 20-character keys in the same shape as Firebase
// push ids: 8 timestamp characters followed by 12 random ones.
type PushKeyGenerator struct {
	mu       sync.Mutex
	now      func() time.Time
	lastTime int64
	lastRand [12]byte
}

func NewPushKeyGenerator(now func() time.Time) *PushKeyGenerator {
	if now == nil {
		now = time.Now
	}
	return &PushKeyGenerator{now: now}
}

var defaultPushKeys = NewPushKeyGenerator(nil)

// NewPushKey returns a fresh key from the process-wide generator.
func NewPushKey() string {
	return defaultPushKeys.Next()
}

func (g *PushKeyGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.now().UnixMilli()
	if ts == g.lastTime {
		// same millisecond: bump the random part so keys stay ordered
		i := len(g.lastRand) - 1
		for ; i >= 0 && g.lastRand[i] == 63; i-- {
			g.lastRand[i] = 0
		}
		if i >= 0 {
			g.lastRand[i]++
		}
	} else {
		var buf [12]byte
		_, _ = rand.Read(buf[:])
		for i, b := range buf {
			g.lastRand[i] = b % 64
		}
		g.lastTime = ts
	}

	var key [20]byte
	for i := 7; i >= 0; i-- {
		key[i] = pushChars[ts%64]
		ts /= 64
	}
	for i, r := range g.lastRand {
		key[8+i] = pushChars[r]
	}
	return string(key[:])
}
