package ids

import (
	mathrand "math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// New returns "<prefix>-<ulid>", a timestamp followed by a random suffix.
// Ids from one process sort in creation order.
func New(prefix string) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	id := strings.ToLower(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
