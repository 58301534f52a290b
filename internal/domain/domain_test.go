package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestImageFile_Validate(t *testing.T) {
	const maxBytes = 2 * 1024 * 1024

	tests := []struct {
		name     string
		file     ImageFile
		expected error
	}{
		{
			name: "PNG dentro do limite",
			file: ImageFile{ContentType: "image/png", Size: 1024, Content: make([]byte, 1024)},
		},
		{
			name: "Exatamente no limite",
			file: ImageFile{ContentType: "image/jpeg", Size: maxBytes},
		},
		{
			name:     "Um byte acima do limite",
			file:     ImageFile{ContentType: "image/jpeg", Size: maxBytes + 1},
			expected: ErrImageTooLarge,
		},
		{
			name:     "Tamanho declarado menor que o conteúdo",
			file:     ImageFile{ContentType: "image/png", Size: 10, Content: make([]byte, maxBytes+10)},
			expected: ErrImageTooLarge,
		},
		{
			name:     "PDF não é imagem",
			file:     ImageFile{ContentType: "application/pdf", Size: 100},
			expected: ErrInvalidImageType,
		},
		{
			name:     "Tipo em maiúsculas",
			file:     ImageFile{ContentType: "IMAGE/GIF", Size: 100},
			expected: nil,
		},
		{
			name:     "Arquivo vazio",
			file:     ImageFile{ContentType: "image/png"},
			expected: ErrEmptyImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate(maxBytes)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := map[string]OrderStatus{
		"Aguardando": OrderStatusAwaiting,
		"awaiting":   OrderStatusAwaiting,
		"SEPARANDO":  OrderStatusPicking,
		"Enviado":    OrderStatusShipped,
		"shipped":    OrderStatusShipped,
		"Concluído":  OrderStatusCompleted,
		"concluido":  OrderStatusCompleted,
		" completed": OrderStatusCompleted,
		"":           OrderStatusUnknown,
		"Cancelado":  OrderStatus("cancelado"),
		"Entregue":   OrderStatus("entregue"),
		"pendente":   OrderStatus("pendente"),
	}

	for raw, expected := range tests {
		assert.Equal(t, expected, NormalizeStatus(raw), "status %q", raw)
	}
}

func TestOrder_EntregueNaoContaComoConcluido(t *testing.T) {
	created := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	delivered := created.Add(20 * time.Minute)
	order := Order{Status: NormalizeStatus("Entregue"), CreatedAt: &created, DeliveredAt: &delivered}

	assert.False(t, order.IsCompleted())
	_, ok := order.DeliveryMinutes()
	assert.False(t, ok)
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, IsAdminRole("Administrator"))
	assert.True(t, IsAdminRole("ADMIN"))
	assert.False(t, IsAdminRole("user"))
	assert.False(t, IsAdminRole(""))
}
