package domain

import (
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/pkg/utils"
)

type OrderStatus string

const (
	OrderStatusAwaiting  OrderStatus = "aguardando"
	OrderStatusPicking   OrderStatus = "separando"
	OrderStatusShipped   OrderStatus = "enviado"
	OrderStatusCompleted OrderStatus = "concluido"
	OrderStatusUnknown   OrderStatus = "desconhecido"
)

var statusAliases = map[string]OrderStatus{
	"aguardando": OrderStatusAwaiting,
	"awaiting":   OrderStatusAwaiting,
	"separando":  OrderStatusPicking,
	"picking":    OrderStatusPicking,
	"enviado":    OrderStatusShipped,
	"shipped":    OrderStatusShipped,
	"concluido":  OrderStatusCompleted,
	"completed":  OrderStatusCompleted,
}

// NormalizeStatus compara o rótulo ignorando caixa e acentos.
// Rótulos não reconhecidos são mantidos na forma normalizada.
func NormalizeStatus(raw string) OrderStatus {
	folded := utils.FoldText(raw)
	if folded == "" {
		return OrderStatusUnknown
	}

	if status, ok := statusAliases[folded]; ok {
		return status
	}

	return OrderStatus(folded)
}

type Order struct {
	ID                 string      `json:"id"`
	CustomerName       *string     `json:"customer_name,omitempty"`
	ProductDescription *string     `json:"product_description,omitempty"`
	Amount             float64     `json:"amount"`
	PaymentMethod      *string     `json:"payment_method,omitempty"`
	CreatedAt          *time.Time  `json:"created_at,omitempty"`
	DeliveredAt        *time.Time  `json:"delivered_at,omitempty"`
	Status             OrderStatus `json:"status"`
	RawStatus          string      `json:"raw_status,omitempty"`
	Courier            *string     `json:"courier,omitempty"`
}

func (o Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}

// DeliveryMinutes retorna o tempo entre criação e entrega de um pedido concluído.
// O segundo retorno é falso quando o pedido não conta como entrega concluída.
func (o Order) DeliveryMinutes() (float64, bool) {
	if !o.IsCompleted() || o.CreatedAt == nil || o.DeliveredAt == nil {
		return 0, false
	}

	return o.DeliveredAt.Sub(*o.CreatedAt).Minutes(), true
}

type OrderFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
	Search    string
}
