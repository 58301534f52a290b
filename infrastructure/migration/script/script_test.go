package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrders(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	orders := generateOrders(rand.New(rand.NewSource(42)), 100, 7, now)

	require.Len(t, orders, 100)

	ids := make(map[string]bool, len(orders))
	for _, order := range orders {
		assert.Len(t, order.ID, idLength)
		assert.False(t, ids[order.ID], "id repetido: %s", order.ID)
		ids[order.ID] = true

		assert.False(t, order.CreatedAt.After(now))
		assert.True(t, order.CreatedAt.After(now.AddDate(0, 0, -8)))
		assert.Greater(t, order.Amount, 0.0)

		if order.Status == "Concluído" {
			if assert.NotNil(t, order.DeliveredAt) {
				assert.True(t, order.DeliveredAt.After(order.CreatedAt))
			}
		} else {
			assert.Nil(t, order.DeliveredAt)
		}

		if order.Status == "Aguardando" {
			assert.Nil(t, order.Courier)
		}
	}
}
