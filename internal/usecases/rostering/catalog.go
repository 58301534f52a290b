package rostering

import (
	"sync"
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/utils"
)

// RoleCatalog guarda em memória os papéis do backend. É preenchido pelo
// agendador e, sob demanda, quando um nome não é encontrado.
type RoleCatalog struct {
	mu          sync.RWMutex
	roles       []domain.Role
	refreshedAt time.Time
}

func NewRoleCatalog() *RoleCatalog {
	return &RoleCatalog{}
}

func (c *RoleCatalog) Replace(roles []domain.Role) {
	snapshot := make([]domain.Role, len(roles))
	copy(snapshot, roles)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.roles = snapshot
	c.refreshedAt = time.Now()
}

func (c *RoleCatalog) Snapshot() []domain.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()

	roles := make([]domain.Role, len(c.roles))
	copy(roles, c.roles)
	return roles
}

func (c *RoleCatalog) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}

func (c *RoleCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.roles)
}

// Find compara nomes sem diferenciar caixa e acentos. Nome vazio escolhe o
// primeiro papel que não é de administrador.
func (c *RoleCatalog) Find(name string) (domain.Role, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	wanted := utils.FoldText(name)
	for _, role := range c.roles {
		if wanted == "" && !domain.IsAdminRole(role.Name) {
			return role, true
		}
		if wanted != "" && utils.FoldText(role.Name) == wanted {
			return role, true
		}
	}

	return domain.Role{}, false
}
