package utils

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// NormalizeAmount converte um valor monetário (número ou texto como "R$ 12,50")
// em float64 não negativo. Entradas vazias ou inválidas viram 0, nunca erro.
func NormalizeAmount(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return finiteOrZero(float64(v))
	case int32:
		return finiteOrZero(float64(v))
	case int64:
		return finiteOrZero(float64(v))
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case decimal.Decimal:
		return finiteOrZero(v.InexactFloat64())
	case string:
		return parseAmount(v)
	case []byte:
		return parseAmount(string(v))
	default:
		return 0
	}
}

func parseAmount(raw string) float64 {
	cleaned := trimCurrencyMarker(strings.TrimSpace(raw))
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, cleaned)

	if cleaned == "" {
		return 0
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot > lastComma:
		// 1,234.56
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case lastComma >= 0:
		// 1.234,56
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	return finiteOrZero(amount.InexactFloat64())
}

func isMarkerRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Sc, r)
}

// trimCurrencyMarker remove prefixo ou sufixo como "R$", "US$" ou "€".
// Letras só saem junto de um símbolo de moeda.
func trimCurrencyMarker(s string) string {
	hasSymbol := func(run string) bool {
		return strings.IndexFunc(run, func(r rune) bool { return unicode.Is(unicode.Sc, r) }) >= 0
	}

	if end := strings.IndexFunc(s, func(r rune) bool { return !isMarkerRune(r) }); end > 0 && hasSymbol(s[:end]) {
		s = s[end:]
	}
	if start := strings.LastIndexFunc(s, func(r rune) bool { return !isMarkerRune(r) }); start >= 0 && start < len(s)-1 {
		_, size := utf8.DecodeRuneInString(s[start:])
		if tail := s[start+size:]; hasSymbol(tail) {
			s = s[:start+size]
		}
	}
	return s
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// FormatBRL formata o valor no padrão monetário brasileiro (R$ 1.234,56)
func FormatBRL(f float64) string {
	return brlPrinter.Sprintf("R$ %.2f", f)
}
