package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/utils"
)

func testFields() domain.OrderFieldMapping {
	return domain.OrderFieldMapping{
		ID:            domain.FieldCandidates{"id"},
		CustomerName:  domain.FieldCandidates{"nome", "customer_name"},
		Product:       domain.FieldCandidates{"produto", "product"},
		Amount:        domain.FieldCandidates{"valor_do_produto", "valor", "amount"},
		PaymentMethod: domain.FieldCandidates{"forma_de_pagamento", "payment_method"},
		CreatedAt:     domain.FieldCandidates{"data_pedido", "created_at", "date_created"},
		DeliveredAt:   domain.FieldCandidates{"data_entrega", "delivered_at"},
		Status:        domain.FieldCandidates{"status"},
		Courier:       domain.FieldCandidates{"entregador", "courier"},
	}
}

func TestMapper_MapOrder(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	mapper := NewMapper(testFields(), loc)

	t.Run("Registro completo do Directus", func(t *testing.T) {
		order := mapper.MapOrder(domain.Record{
			"id":                 float64(42),
			"nome":               "José",
			"produto":            "Pizza",
			"valor_do_produto":   "R$ 12,50",
			"forma_de_pagamento": "Pix",
			"data_pedido":        "2024-01-10T12:00:00Z",
			"data_entrega":       "2024-01-10T12:45:00Z",
			"status":             "Concluído",
			"entregador":         "Carlos",
		})

		assert.Equal(t, "42", order.ID)
		require.NotNil(t, order.CustomerName)
		assert.Equal(t, "José", *order.CustomerName)
		assert.Equal(t, 12.5, order.Amount)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		assert.Equal(t, "Concluído", order.RawStatus)

		minutes, ok := order.DeliveryMinutes()
		require.True(t, ok)
		assert.Equal(t, 45.0, minutes)
	})

	t.Run("Campos alternativos e data sem fuso", func(t *testing.T) {
		order := mapper.MapOrder(domain.Record{
			"id":         "abc",
			"amount":     float64(30),
			"created_at": "2024-01-10 08:00:00",
			"status":     "shipped",
		})

		require.NotNil(t, order.CreatedAt)
		assert.True(t, time.Date(2024, 1, 10, 8, 0, 0, 0, loc).Equal(*order.CreatedAt))
		assert.Equal(t, 30.0, order.Amount)
		assert.Equal(t, domain.OrderStatusShipped, order.Status)
		assert.Nil(t, order.CustomerName)
		assert.Nil(t, order.Courier)
	})

	t.Run("Data ilegível passa para o próximo candidato", func(t *testing.T) {
		order := mapper.MapOrder(domain.Record{
			"id":          "1",
			"data_pedido": "ontem",
			"created_at":  "2024-01-10",
		})

		require.NotNil(t, order.CreatedAt)
		assert.True(t, time.Date(2024, 1, 10, 0, 0, 0, 0, loc).Equal(*order.CreatedAt))
	})

	t.Run("Sem data e sem valor", func(t *testing.T) {
		order := mapper.MapOrder(domain.Record{"id": "1", "valor": "abc"})

		assert.Nil(t, order.CreatedAt)
		assert.Equal(t, 0.0, order.Amount)
		assert.Equal(t, domain.OrderStatusUnknown, order.Status)
	})
}

func TestMapper_SemFusoUsaUTC(t *testing.T) {
	mapper := NewMapper(testFields(), nil)

	order := mapper.MapOrder(domain.Record{"id": "1", "created_at": "2024-01-10 08:00:00"})

	require.NotNil(t, order.CreatedAt)
	assert.True(t, time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC).Equal(*order.CreatedAt))
}

func TestMapper_TimestampSemFusoDoPostgres(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	mapper := NewMapper(testFields(), loc)
	// lib/pq entrega colunas timestamp numa zona anônima de offset zero
	pqZone := time.FixedZone("", 0)

	rest := mapper.MapOrder(domain.Record{"id": "rest", "created_at": "2024-01-10T01:00:00"})
	pg := mapper.MapOrder(domain.Record{"id": "pg", "created_at": time.Date(2024, 1, 10, 1, 0, 0, 0, pqZone)})

	require.NotNil(t, rest.CreatedAt)
	require.NotNil(t, pg.CreatedAt)
	assert.True(t, rest.CreatedAt.Equal(*pg.CreatedAt), "rest=%s pg=%s", rest.CreatedAt.UTC(), pg.CreatedAt.UTC())

	day, err := utils.ParseDate("2024-01-10", loc)
	require.NoError(t, err)
	kept := FilterByDateRange([]domain.Order{rest, pg}, day, day)
	assert.Len(t, kept, 2)
}
