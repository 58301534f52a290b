package domain

import (
	"strings"
	"time"
)

const adminRoleMarker = "admin"

type AuthTokens struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// Identity é o usuário autenticado, já com o perfil de exibição resolvido
type Identity struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	LogoRef    *string `json:"logo_ref,omitempty"`
	LogoURL    *string `json:"logo_url,omitempty"`
	RoleName   string  `json:"role"`
	Collection string  `json:"collection,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return IsAdminRole(i.RoleName)
}

// IsAdminRole aplica o predicado de administrador: o rótulo contém "admin", sem diferenciar caixa
func IsAdminRole(roleName string) bool {
	return strings.Contains(strings.ToLower(roleName), adminRoleMarker)
}

// Session liga a identidade ao token usado para chamar o backend em nome dela
type Session struct {
	Token    string
	Identity Identity
}

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RosterEntry struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	RoleName  string     `json:"role"`
	LogoURL   *string    `json:"logo_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type NewRosterEntry struct {
	Email       string
	Password    string
	DisplayName string
	RoleID      string
	RoleName    string
	Collection  string
	LogoRef     *string
}

type Profile struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url,omitempty"`
}

type ProfileUpdate struct {
	Name    *string
	LogoRef *string
}
