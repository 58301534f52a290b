package domain

import "strings"

// Record é um registro genérico de coleção, como devolvido pelo backend
type Record map[string]any

// Lookup retorna o primeiro campo presente e não vazio, na ordem dos candidatos
func (r Record) Lookup(candidates FieldCandidates) (any, bool) {
	for _, field := range candidates {
		value, ok := r[field]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return value, true
	}
	return nil, false
}

// LookupString é Lookup para campos textuais
func (r Record) LookupString(candidates FieldCandidates) (string, bool) {
	value, ok := r.Lookup(candidates)
	if !ok {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), true
	case []byte:
		return strings.TrimSpace(string(v)), true
	default:
		return "", false
	}
}

type RecordQuery struct {
	Fields []string
	Filter map[string]string
	Sort   []string
	Limit  int
}

// FieldCandidates é uma lista ordenada de nomes de campo possíveis para um mesmo atributo
type FieldCandidates []string

type OrderFieldMapping struct {
	ID            FieldCandidates
	CustomerName  FieldCandidates
	Product       FieldCandidates
	Amount        FieldCandidates
	PaymentMethod FieldCandidates
	CreatedAt     FieldCandidates
	DeliveredAt   FieldCandidates
	Status        FieldCandidates
	Courier       FieldCandidates
}

type ProfileFieldMapping struct {
	Name FieldCandidates
	Logo FieldCandidates
}
