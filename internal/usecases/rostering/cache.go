package rostering

import (
	"sync"
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

// rosterCache é a cópia local da lista de usuários. O backend é a fonte
// de verdade; a cópia expira após ttl e é descartada a cada criação.
// generation muda a cada alteração local para que uma busca iniciada antes
// dela não grave uma lista velha.
type rosterCache struct {
	mu         sync.Mutex
	entries    []domain.RosterEntry
	fetchedAt  time.Time
	generation uint64
	ttl        time.Duration
	now        func() time.Time
}

func newRosterCache(ttl time.Duration) *rosterCache {
	return &rosterCache{ttl: ttl, now: time.Now}
}

func (c *rosterCache) Get() ([]domain.RosterEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetchedAt.IsZero() || c.ttl <= 0 || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}

	entries := make([]domain.RosterEntry, len(c.entries))
	copy(entries, c.entries)
	return entries, true
}

func (c *rosterCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generation
}

// Set grava a lista buscada na geração generation; se houve criação ou remoção
// depois disso a lista é descartada
func (c *rosterCache) Set(entries []domain.RosterEntry, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return false
	}

	c.entries = make([]domain.RosterEntry, len(entries))
	copy(c.entries, entries)
	c.fetchedAt = c.now()
	return true
}

// Remove tira a entrada da cópia local sem renovar o prazo
func (c *rosterCache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.entries[:0]
	for _, entry := range c.entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	c.entries = kept
	c.generation++
}

func (c *rosterCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.fetchedAt = time.Time{}
	c.generation++
}
