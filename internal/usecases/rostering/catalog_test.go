package rostering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

func TestRoleCatalog_Find(t *testing.T) {
	catalog := NewRoleCatalog()
	catalog.Replace([]domain.Role{
		{ID: "1", Name: "Administrator"},
		{ID: "2", Name: "Usuário"},
	})

	role, ok := catalog.Find("usuario")
	assert.True(t, ok)
	assert.Equal(t, "2", role.ID)

	role, ok = catalog.Find("ADMINISTRATOR")
	assert.True(t, ok)
	assert.Equal(t, "1", role.ID)

	role, ok = catalog.Find("")
	assert.True(t, ok, "nome vazio escolhe o papel padrão")
	assert.Equal(t, "2", role.ID)

	_, ok = catalog.Find("gerente")
	assert.False(t, ok)
}

func TestRoleCatalog_SnapshotIsCopy(t *testing.T) {
	roles := []domain.Role{{ID: "1", Name: "admin"}}
	catalog := NewRoleCatalog()
	catalog.Replace(roles)
	roles[0].Name = "alterado"

	snapshot := catalog.Snapshot()
	snapshot[0].Name = "outro"

	assert.Equal(t, "admin", catalog.Snapshot()[0].Name)
	assert.False(t, catalog.RefreshedAt().IsZero())
}

func TestRosterCache_Expira(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	cache := newRosterCache(time.Minute)
	cache.now = func() time.Time { return now }

	_, ok := cache.Get()
	assert.False(t, ok, "cache vazio")

	cache.Set([]domain.RosterEntry{{ID: "u1"}}, cache.Generation())
	_, ok = cache.Get()
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = cache.Get()
	assert.False(t, ok, "cache expirado")
}

func TestRosterCache_SemTTLNaoGuarda(t *testing.T) {
	cache := newRosterCache(0)
	cache.Set([]domain.RosterEntry{{ID: "u1"}}, cache.Generation())

	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestRosterCache_DescartaBuscaAnteriorAAlteracao(t *testing.T) {
	cache := newRosterCache(time.Minute)

	generation := cache.Generation()
	cache.Invalidate()

	assert.False(t, cache.Set([]domain.RosterEntry{{ID: "u1"}}, generation))
	_, ok := cache.Get()
	assert.False(t, ok)

	assert.True(t, cache.Set([]domain.RosterEntry{{ID: "u1"}, {ID: "u2"}}, cache.Generation()))
	entries, ok := cache.Get()
	require.True(t, ok)
	assert.Len(t, entries, 2)
}
