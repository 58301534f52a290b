package dashboarding

import (
	"fmt"
	"strconv"
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/utils"
)

// Mapper converte registros crus do backend em pedidos, resolvendo cada
// atributo pela lista de campos candidatos
type Mapper struct {
	fields   domain.OrderFieldMapping
	location *time.Location
}

func NewMapper(fields domain.OrderFieldMapping, location *time.Location) Mapper {
	if location == nil {
		location = time.UTC
	}
	return Mapper{fields: fields, location: location}
}

func (m Mapper) MapOrders(records []domain.Record) []domain.Order {
	orders := make([]domain.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, m.MapOrder(record))
	}
	return orders
}

func (m Mapper) MapOrder(record domain.Record) domain.Order {
	order := domain.Order{}

	if id, ok := record.Lookup(m.fields.ID); ok {
		order.ID = idString(id)
	}

	order.CustomerName = m.optionalString(record, m.fields.CustomerName)
	order.ProductDescription = m.optionalString(record, m.fields.Product)
	order.PaymentMethod = m.optionalString(record, m.fields.PaymentMethod)
	order.Courier = m.optionalString(record, m.fields.Courier)

	if amount, ok := record.Lookup(m.fields.Amount); ok {
		order.Amount = utils.NormalizeAmount(amount)
	}

	order.CreatedAt = m.timestamp(record, m.fields.CreatedAt)
	order.DeliveredAt = m.timestamp(record, m.fields.DeliveredAt)

	if status, ok := record.LookupString(m.fields.Status); ok {
		order.RawStatus = status
	}
	order.Status = domain.NormalizeStatus(order.RawStatus)

	return order
}

// timestamp tenta cada candidato em ordem; um valor presente mas ilegível passa para o próximo
func (m Mapper) timestamp(record domain.Record, candidates domain.FieldCandidates) *time.Time {
	for _, field := range candidates {
		value, ok := record.Lookup(domain.FieldCandidates{field})
		if !ok {
			continue
		}
		if t, ok := utils.ParseTimestamp(value, m.location); ok {
			return t
		}
	}
	return nil
}

func (m Mapper) optionalString(record domain.Record, candidates domain.FieldCandidates) *string {
	value, ok := record.Lookup(candidates)
	if !ok {
		return nil
	}

	text := fmt.Sprint(value)
	if s, isString := value.(string); isString {
		text = s
	}
	return &text
}

func idString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
