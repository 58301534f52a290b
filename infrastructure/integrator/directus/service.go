package directus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	directusdomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/domain"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/directusclient"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

const (
	nameField       = "first_name"
	avatarField     = "avatar"
	collectionField = "collection_name"
)

var userFields = []string{"*", "role.name"}

type DirectusService struct {
	client            directusclient.Client
	profileFields     domain.ProfileFieldMapping
	profileCollection string
}

func New(cfg *config.Config, client directusclient.Client) integrator.Backend {
	return &DirectusService{
		client:            client,
		profileFields:     cfg.ProfileFields(),
		profileCollection: cfg.Directus.ProfileCollection,
	}
}

func (s *DirectusService) Name() string {
	return directusclient.BackendName
}

func (s *DirectusService) Authenticate(ctx context.Context, email, password string) (*domain.AuthTokens, error) {
	data, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	tokens := &domain.AuthTokens{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
	}
	if data.Expires > 0 {
		expiresAt := time.Now().Add(time.Duration(data.Expires) * time.Millisecond)
		tokens.ExpiresAt = &expiresAt
	}

	return tokens, nil
}

func (s *DirectusService) EndSession(ctx context.Context, tokens domain.AuthTokens) error {
	// Sem refresh token não há sessão no servidor para encerrar
	if tokens.RefreshToken == "" {
		return nil
	}

	return s.client.Logout(ctx, tokens.RefreshToken)
}

func (s *DirectusService) CurrentIdentity(ctx context.Context, token string) (*domain.Identity, error) {
	user, err := s.client.GetCurrentUser(ctx, token, userFields)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, integrator.NewBackendError(s.Name(), http.StatusUnauthorized, "Usuário não encontrado")
	}

	record := domain.Record(user)
	identity := &domain.Identity{
		ID:         stringValue(record["id"]),
		Email:      stringValue(record["email"]),
		RoleName:   roleName(record["role"]),
		Collection: stringValue(record[collectionField]),
	}
	identity.Name, _ = record.LookupString(s.profileFields.Name)
	identity.LogoRef, identity.LogoURL = s.logo(record)

	return identity, nil
}

func (s *DirectusService) UpdateProfile(ctx context.Context, token string, _ string, update domain.ProfileUpdate) error {
	patch := make(map[string]any)
	if update.Name != nil {
		field, err := s.writableNameField(ctx, token)
		if err != nil {
			return err
		}
		patch[field] = *update.Name
	}
	if update.LogoRef != nil {
		patch[avatarField] = *update.LogoRef
	}

	if len(patch) == 0 {
		return nil
	}

	return s.client.UpdateCurrentUser(ctx, token, patch)
}

// writableNameField devolve o primeiro campo de nome configurado que existe no
// usuário, o mesmo que CurrentIdentity lê; sem nenhum deles usa first_name
func (s *DirectusService) writableNameField(ctx context.Context, token string) (string, error) {
	user, err := s.client.GetCurrentUser(ctx, token, []string{"*"})
	if err != nil {
		return "", err
	}

	for _, field := range s.profileFields.Name {
		if _, ok := user[field]; ok {
			return field, nil
		}
	}
	return nameField, nil
}

func (s *DirectusService) ListRecords(ctx context.Context, token string, collection string, query domain.RecordQuery) ([]domain.Record, error) {
	if err := integrator.ValidateCollection(collection); err != nil {
		return nil, err
	}

	params := url.Values{}
	if len(query.Fields) > 0 {
		params.Set("fields", strings.Join(query.Fields, ","))
	}
	if len(query.Sort) > 0 {
		params.Set("sort", strings.Join(query.Sort, ","))
	}
	for field, value := range query.Filter {
		params.Set(fmt.Sprintf("filter[%s][_eq]", field), value)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	items, err := s.client.ListItems(ctx, token, collection, params)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(items))
	for _, item := range items {
		records = append(records, domain.Record(item))
	}

	return records, nil
}

func (s *DirectusService) StoreObject(ctx context.Context, token string, file domain.ImageFile) (*domain.StoredObject, error) {
	stored, err := s.client.UploadFile(ctx, token, file.Title, file)
	if err != nil {
		return nil, err
	}

	return &domain.StoredObject{
		Key: stored.ID,
		URL: s.client.AssetURL(stored.ID),
	}, nil
}

func (s *DirectusService) ObjectURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return s.client.AssetURL(ref)
}

func (s *DirectusService) PublicProfile(ctx context.Context) (*domain.Profile, error) {
	// Chamada sem sessão: vale a permissão pública (ou o token estático, se configurado)
	records, err := s.ListRecords(ctx, "", s.profileCollection, domain.RecordQuery{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	profile := &domain.Profile{}
	profile.Name, _ = records[0].LookupString(s.profileFields.Name)
	_, profile.LogoURL = s.logo(records[0])

	return profile, nil
}

func (s *DirectusService) ListRoster(ctx context.Context, token string) ([]domain.RosterEntry, error) {
	users, err := s.client.ListUsers(ctx, token, userFields)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RosterEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, s.rosterEntry(user))
	}

	return entries, nil
}

func (s *DirectusService) ListRoles(ctx context.Context, token string) ([]domain.Role, error) {
	roles, err := s.client.ListRoles(ctx, token, "")
	if err != nil {
		return nil, err
	}

	result := make([]domain.Role, 0, len(roles))
	for _, role := range roles {
		result = append(result, domain.Role{ID: role.ID, Name: role.Name})
	}

	return result, nil
}

func (s *DirectusService) CreateRosterEntry(ctx context.Context, token string, entry domain.NewRosterEntry) (*domain.RosterEntry, error) {
	payload := map[string]any{
		"email":    entry.Email,
		"password": entry.Password,
		"role":     entry.RoleID,
		nameField:  entry.DisplayName,
	}
	if entry.LogoRef != nil {
		payload[avatarField] = *entry.LogoRef
	}
	if entry.Collection != "" {
		payload[collectionField] = entry.Collection
	}

	user, err := s.client.CreateUser(ctx, token, payload)
	if err != nil {
		return nil, err
	}

	created := s.rosterEntry(user)
	if created.RoleName == "" {
		created.RoleName = entry.RoleName
	}
	if created.Email == "" {
		created.Email = entry.Email
	}

	return &created, nil
}

func (s *DirectusService) DeleteRosterEntry(ctx context.Context, token string, id string) error {
	return s.client.DeleteUser(ctx, token, id)
}

func (s *DirectusService) rosterEntry(user directusdomain.User) domain.RosterEntry {
	record := domain.Record(user)
	entry := domain.RosterEntry{
		ID:       stringValue(record["id"]),
		Email:    stringValue(record["email"]),
		RoleName: roleName(record["role"]),
	}
	entry.Name, _ = record.LookupString(s.profileFields.Name)
	_, entry.LogoURL = s.logo(record)

	return entry
}

// logo resolve a referência do arquivo de logo e sua URL pública
func (s *DirectusService) logo(record domain.Record) (*string, *string) {
	value, ok := record.Lookup(s.profileFields.Logo)
	if !ok {
		return nil, nil
	}

	ref := stringValue(value)
	if file, isMap := value.(map[string]any); isMap {
		ref = stringValue(file["id"])
	}
	if ref == "" {
		return nil, nil
	}

	logoURL := s.ObjectURL(ref)
	return &ref, &logoURL
}

// roleName lê o papel expandido (role.name). Só o identificador não traz o nome.
func roleName(value any) string {
	if role, ok := value.(map[string]any); ok {
		return stringValue(role["name"])
	}
	return ""
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
