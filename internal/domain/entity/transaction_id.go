package entity

import (
	"crypto/rand"
	"strings"
	"sync"

	"time"

	"github.com/oklog/ulid/v2"
)

// TransactionIDPrefix marks ledger entry identifiers
const TransactionIDPrefix = "txn-"

// IDGenerator issues ledger entry identifiers of the form "txn-<ulid>".
// The ULID timestamp prefix keeps ids ordered by creation time; ids generated
// within the same millisecond stay ordered through monotonic entropy.
type IDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDGenerator creates an IDGenerator seeded from crypto/rand
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a new identifier stamped with now
func (g *IDGenerator) Next(now time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(now), g.entropy)
	if err != nil {
		return "", err
	}
	return TransactionIDPrefix + strings.ToLower(id.String()), nil
}
