package supabase

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	supabasedomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/supabase/domain"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/supabase/supabaseclient"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/log"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/utils"
)

const (
	profilesTable  = "profiles"
	userRolesTable = "user_roles"

	nameField = "nome_estabelecimento"
	logoField = "logo_url"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

type SupabaseService struct {
	client        supabaseclient.Client
	profileFields domain.ProfileFieldMapping
	logosBucket   string
}

func New(cfg *config.Config, client supabaseclient.Client) integrator.Backend {
	return &SupabaseService{
		client:        client,
		profileFields: cfg.ProfileFields(),
		logosBucket:   cfg.Supabase.LogosBucket,
	}
}

func (s *SupabaseService) Name() string {
	return supabaseclient.BackendName
}

func (s *SupabaseService) Authenticate(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	session, err := s.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	tokens := &domain.AuthTokens{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}

	switch {
	case session.ExpiresAt > 0:
		expiresAt := time.Unix(session.ExpiresAt, 0)
		tokens.ExpiresAt = &expiresAt
	case session.ExpiresIn > 0:
		expiresAt := time.Now().Add(time.Duration(session.ExpiresIn) * time.Second)
		tokens.ExpiresAt = &expiresAt
	}

	return tokens, nil
}

func (s *SupabaseService) EndSession(ctx context.Context, tokens domain.AuthTokens) error {
	return s.client.SignOut(ctx, tokens.AccessToken)
}

func (s *SupabaseService) CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error) {
	user, err := s.client.GetUser(ctx, token)
	if err != nil {
		return nil, err
	}

	roles, err := s.client.Select(ctx, token, userRolesTable, url.Values{
		"select":  []string{"role"},
		"user_id": []string{"eq." + user.ID},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os papéis do usuário")
	}

	identity := &domain.Identity{
		ID:       user.ID,
		Email:    user.Email,
		RoleName: pickRole(roles),
	}

	profile, err := s.profileRow(ctx, token, user.ID)
	if err != nil {
		// O perfil é só exibição: falha aqui não derruba a sessão
		log.ForContext(ctx).WithError(err).Warn("Erro ao buscar o perfil do usuário no Supabase")
	}

	identity.Name = s.displayName(profile, user.UserMetadata)
	if logoURL := s.logoURL(profile); logoURL != nil {
		identity.LogoRef = logoURL
		identity.LogoURL = logoURL
	}

	return identity, nil
}

func (s *SupabaseService) UpdateProfile(ctx context.Context, token string, identityID string, update domain.ProfileUpdate) error {
	patch := make(map[string]any)
	if update.Name != nil {
		patch[nameField] = *update.Name
	}
	if update.LogoRef != nil {
		patch[logoField] = s.ObjectURL(*update.LogoRef)
	}

	if len(patch) == 0 {
		return nil
	}

	return s.client.Update(ctx, token, profilesTable, url.Values{"id": []string{"eq." + identityID}}, patch)
}

func (s *SupabaseService) ListRecords(ctx context.Context, token string, collection string, query domain.RecordQuery) ([]domain.Record, error) {
	if err := integrator.ValidateCollection(collection); err != nil {
		return nil, err
	}

	params := url.Values{}
	if len(query.Fields) > 0 {
		params.Set("select", strings.Join(query.Fields, ","))
	}
	if len(query.Sort) > 0 {
		params.Set("order", postgrestOrder(query.Sort))
	}
	for field, value := range query.Filter {
		params.Set(field, "eq."+value)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	rows, err := s.client.Select(ctx, token, collection, params)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.Record(row))
	}

	return records, nil
}

func (s *SupabaseService) StoreObject(ctx context.Context, token string, file domain.ImageFile) (*domain.StoredObject, error) {
	key, err := utils.GenerateObjectKey(file.Filename)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar a chave do arquivo")
	}

	if err := s.client.Upload(ctx, token, s.logosBucket, key, file, false); err != nil {
		return nil, err
	}

	return &domain.StoredObject{
		Key: key,
		URL: s.client.PublicURL(s.logosBucket, key),
	}, nil
}

func (s *SupabaseService) ObjectURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return s.client.PublicURL(s.logosBucket, ref)
}

func (s *SupabaseService) PublicProfile(ctx context.Context) (*domain.Profile, error) {
	rows, err := s.client.Select(ctx, "", profilesTable, url.Values{"limit": []string{"1"}})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	profile := domain.Record(rows[0])
	return &domain.Profile{
		Name:    s.displayName(profile, nil),
		LogoURL: s.logoURL(profile),
	}, nil
}

func (s *SupabaseService) ListRoster(ctx context.Context, _ string) ([]domain.RosterEntry, error) {
	serviceToken, err := s.client.ServiceToken()
	if err != nil {
		return nil, err
	}

	users, err := s.client.AdminListUsers(ctx)
	if err != nil {
		return nil, err
	}

	roleRows, err := s.client.Select(ctx, serviceToken, userRolesTable, url.Values{"select": []string{"user_id,role"}})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os papéis dos usuários")
	}

	profileRows, err := s.client.Select(ctx, serviceToken, profilesTable, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os perfis dos usuários")
	}

	rolesByUser := make(map[string][]map[string]any)
	for _, row := range roleRows {
		userID := fmt.Sprint(row["user_id"])
		rolesByUser[userID] = append(rolesByUser[userID], row)
	}

	profilesByUser := make(map[string]domain.Record, len(profileRows))
	for _, row := range profileRows {
		profilesByUser[fmt.Sprint(row["id"])] = domain.Record(row)
	}

	entries := make([]domain.RosterEntry, 0, len(users))
	for _, user := range users {
		profile := profilesByUser[user.ID]
		entries = append(entries, domain.RosterEntry{
			ID:        user.ID,
			Email:     user.Email,
			Name:      s.displayName(profile, user.UserMetadata),
			RoleName:  pickRole(rolesByUser[user.ID]),
			LogoURL:   s.logoURL(profile),
			CreatedAt: user.CreatedAt,
		})
	}

	// Mais recentes primeiro
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt == nil || entries[j].CreatedAt == nil {
			return entries[j].CreatedAt == nil && entries[i].CreatedAt != nil
		}
		return entries[i].CreatedAt.After(*entries[j].CreatedAt)
	})

	return entries, nil
}

// ListRoles devolve a enumeração fixa de papéis da tabela user_roles
func (s *SupabaseService) ListRoles(_ context.Context, _ string) ([]domain.Role, error) {
	return []domain.Role{
		{ID: RoleAdmin, Name: RoleAdmin},
		{ID: RoleUser, Name: RoleUser},
	}, nil
}

func (s *SupabaseService) CreateRosterEntry(ctx context.Context, _ string, entry domain.NewRosterEntry) (*domain.RosterEntry, error) {
	serviceToken, err := s.client.ServiceToken()
	if err != nil {
		return nil, err
	}

	user, err := s.client.AdminCreateUser(ctx, supabasedomain.AdminUserParams{
		Email:        entry.Email,
		Password:     entry.Password,
		EmailConfirm: true,
		UserMetadata: map[string]any{nameField: entry.DisplayName},
	})
	if err != nil {
		return nil, err
	}

	created := &domain.RosterEntry{
		ID:        user.ID,
		Email:     user.Email,
		Name:      entry.DisplayName,
		RoleName:  entry.RoleName,
		CreatedAt: user.CreatedAt,
	}

	if entry.LogoRef != nil {
		logoURL := s.ObjectURL(*entry.LogoRef)
		err := s.client.Update(ctx, serviceToken, profilesTable, url.Values{"id": []string{"eq." + user.ID}}, map[string]any{
			logoField: logoURL,
		})
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao vincular a logo ao perfil do novo usuário")
		} else {
			created.LogoURL = &logoURL
		}
	}

	// Sem rollback: se a atribuição do papel falhar, o usuário criado permanece
	err = s.client.Insert(ctx, serviceToken, userRolesTable, supabasedomain.UserRole{
		UserID: user.ID,
		Role:   entry.RoleID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "usuário %s criado, mas falhou ao atribuir o papel", user.ID)
	}

	return created, nil
}

func (s *SupabaseService) DeleteRosterEntry(ctx context.Context, _ string, id string) error {
	return s.client.AdminDeleteUser(ctx, id)
}

func (s *SupabaseService) profileRow(ctx context.Context, token string, userID string) (domain.Record, error) {
	rows, err := s.client.Select(ctx, token, profilesTable, url.Values{
		"id":    []string{"eq." + userID},
		"limit": []string{"1"},
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return domain.Record(rows[0]), nil
}

func (s *SupabaseService) displayName(profile domain.Record, metadata map[string]any) string {
	if name, ok := profile.LookupString(s.profileFields.Name); ok {
		return name
	}
	if name, ok := domain.Record(metadata).LookupString(s.profileFields.Name); ok {
		return name
	}
	return ""
}

func (s *SupabaseService) logoURL(profile domain.Record) *string {
	ref, ok := profile.LookupString(s.profileFields.Logo)
	if !ok || ref == "" {
		return nil
	}

	logoURL := s.ObjectURL(ref)
	return &logoURL
}

// pickRole prefere um papel de administrador quando o usuário tem mais de um
func pickRole(rows []map[string]any) string {
	first := ""
	for _, row := range rows {
		role, _ := row["role"].(string)
		if role == "" {
			continue
		}
		if domain.IsAdminRole(role) {
			return role
		}
		if first == "" {
			first = role
		}
	}
	return first
}

// postgrestOrder converte "-campo" em "campo.desc"
func postgrestOrder(sortFields []string) string {
	parts := make([]string, 0, len(sortFields))
	for _, field := range sortFields {
		if strings.HasPrefix(field, "-") {
			parts = append(parts, strings.TrimPrefix(field, "-")+".desc")
		} else {
			parts = append(parts, field+".asc")
		}
	}
	return strings.Join(parts, ",")
}
