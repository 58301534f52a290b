package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "Texto com símbolo de moeda e vírgula", input: "R$ 12,50", expected: 12.5},
		{name: "Texto com separador de milhar", input: "R$ 1.234,56", expected: 1234.56},
		{name: "Texto no formato com ponto decimal", input: "1,234.56", expected: 1234.56},
		{name: "Texto com espaço não separável", input: "R$ 99,90", expected: 99.9},
		{name: "Texto simples com ponto", input: "42.75", expected: 42.75},
		{name: "Número float já normalizado", input: 12.5, expected: 12.5},
		{name: "Número inteiro", input: 30, expected: 30},
		{name: "Bytes vindos do banco", input: []byte("19.90"), expected: 19.9},
		{name: "Prefixo de moeda com letras", input: "US$ 3,00", expected: 3},
		{name: "Sufixo de moeda", input: "12,50 R$", expected: 12.5},
		{name: "Prefixo colado ao número", input: "R$12,50", expected: 12.5},
		{name: "Euro", input: "€ 7,25", expected: 7.25},
		{name: "Letras sem símbolo não são moeda", input: "BRL 5,00", expected: 0},
		{name: "Texto vazio", input: "", expected: 0},
		{name: "Somente espaços", input: "   ", expected: 0},
		{name: "Valor nulo", input: nil, expected: 0},
		{name: "Texto inválido", input: "abc", expected: 0},
		{name: "Valor negativo vira zero", input: "-5,00", expected: 0},
		{name: "NaN vira zero", input: math.NaN(), expected: 0},
		{name: "Infinito vira zero", input: math.Inf(1), expected: 0},
		{name: "Tipo não suportado", input: true, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeAmount(tt.input), 1e-9)
		})
	}
}

func TestNormalizeAmount_Idempotente(t *testing.T) {
	for _, value := range []float64{0, 0.01, 12.5, 1234.56, 99999.99} {
		once := NormalizeAmount(value)
		assert.Equal(t, value, once)
		assert.Equal(t, once, NormalizeAmount(once))
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 12,50", FormatBRL(12.5))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
}
