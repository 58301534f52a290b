package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	t.Run("Data vazia não define limite", func(t *testing.T) {
		date, err := ParseDate("", loc)
		assert.NoError(t, err)
		assert.Nil(t, date)
	})

	t.Run("Data válida no fuso informado", func(t *testing.T) {
		date, err := ParseDate("2024-01-10", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, loc), *date)
	})

	t.Run("Data inválida", func(t *testing.T) {
		_, err := ParseDate("10/01/2024", loc)
		assert.Error(t, err)
	})
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected time.Time
		ok       bool
	}{
		{name: "RFC3339 com fuso", input: "2024-01-10T23:59:00Z", expected: time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC), ok: true},
		{name: "RFC3339 com frações de segundo", input: "2024-01-10T23:59:00.123Z", expected: time.Date(2024, 1, 10, 23, 59, 0, 123000000, time.UTC), ok: true},
		{name: "Sem fuso com T", input: "2024-01-10T23:59:00", expected: time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC), ok: true},
		{name: "Sem fuso com espaço", input: "2024-01-10 08:30:00", expected: time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC), ok: true},
		{name: "Formato do Postgres com offset curto", input: "2024-01-10 08:30:00+00", expected: time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC), ok: true},
		{name: "Somente data", input: "2024-01-10", expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "time.Time recebido do driver", input: time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC), expected: time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC), ok: true},
		{name: "Texto inválido", input: "ontem", ok: false},
		{name: "Valor nulo", input: nil, ok: false},
		{name: "Número não é data", input: 1704844800, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseTimestamp(tt.input, time.UTC)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, result)
				assert.True(t, tt.expected.Equal(*result), "esperado %s, obtido %s", tt.expected, result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestParseTimestamp_TimeDoDriverSemFuso(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	t.Run("Zona anônima é relida na localização", func(t *testing.T) {
		result, ok := ParseTimestamp(time.Date(2024, 1, 10, 1, 0, 0, 0, time.FixedZone("", 0)), loc)
		require.True(t, ok)
		assert.True(t, time.Date(2024, 1, 10, 4, 0, 0, 0, time.UTC).Equal(*result))
	})

	t.Run("UTC explícito é mantido", func(t *testing.T) {
		input := time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC)
		result, ok := ParseTimestamp(&input, loc)
		require.True(t, ok)
		assert.True(t, input.Equal(*result))
	})
}

func TestParseTimestamp_SemFusoUsaLocalizacao(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	result, ok := ParseTimestamp("2024-01-10 12:00:00", loc)
	require.True(t, ok)
	assert.Equal(t, loc, result.Location())
	assert.Equal(t, 12, result.Hour())
}
