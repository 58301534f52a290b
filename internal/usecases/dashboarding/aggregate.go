package dashboarding

import (
	"sort"
	"strings"
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/utils"
)

const (
	PaymentMethodFallback = "Não informado"
	TopCouriersLimit      = 5
)

var deliveryBuckets = []string{"0-30 min", "30-60 min", "60-90 min", "90+ min"}

// FilterByDateRange mantém os pedidos criados em [start, end + 24h].
// Pedidos sem data de criação ficam de fora; limite nil não restringe.
func FilterByDateRange(orders []domain.Order, start, end *time.Time) []domain.Order {
	var endLimit *time.Time
	if end != nil {
		limit := end.Add(24 * time.Hour)
		endLimit = &limit
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.CreatedAt == nil {
			continue
		}
		if start != nil && order.CreatedAt.Before(*start) {
			continue
		}
		if endLimit != nil && order.CreatedAt.After(*endLimit) {
			continue
		}
		filtered = append(filtered, order)
	}

	return filtered
}

// FilterOrders aplica os filtros da listagem: status normalizado e busca
// por nome do cliente ou produto, sem diferenciar caixa e acentos
func FilterOrders(orders []domain.Order, status string, search string) []domain.Order {
	wantStatus := domain.OrderStatus("")
	if strings.TrimSpace(status) != "" {
		wantStatus = domain.NormalizeStatus(status)
	}
	term := utils.FoldText(search)

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if wantStatus != "" && order.Status != wantStatus {
			continue
		}
		if term != "" && !matchesSearch(order, term) {
			continue
		}
		filtered = append(filtered, order)
	}

	return filtered
}

func matchesSearch(order domain.Order, term string) bool {
	for _, field := range []*string{order.CustomerName, order.ProductDescription} {
		if field != nil && strings.Contains(utils.FoldText(*field), term) {
			return true
		}
	}
	return false
}

// SortNewestFirst ordena por data de criação decrescente, sem alterar a entrada
func SortNewestFirst(orders []domain.Order) []domain.Order {
	sorted := make([]domain.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].CreatedAt, sorted[j].CreatedAt
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.After(*b)
	})

	return sorted
}

func Aggregate(orders []domain.Order) domain.DashboardMetrics {
	metrics := domain.DashboardMetrics{
		TotalOrders:               len(orders),
		DeliveryTimeHistogram:     []domain.SeriesPoint{},
		PaymentMethodDistribution: PaymentDistribution(orders),
		TopCouriers:               TopCouriers(orders, TopCouriersLimit),
		StatusBreakdown:           StatusBreakdown(orders),
		ActiveCouriers:            ActiveCouriers(orders),
	}

	bucketCounts := make(map[string]int, len(deliveryBuckets))
	totalMinutes := 0.0

	for _, order := range orders {
		metrics.TotalRevenue += order.Amount

		minutes, ok := order.DeliveryMinutes()
		if !ok {
			continue
		}
		metrics.CompletedOrders++
		totalMinutes += minutes
		bucketCounts[DeliveryBucket(minutes)]++
	}

	if metrics.TotalOrders > 0 {
		metrics.AverageOrderValue = metrics.TotalRevenue / float64(metrics.TotalOrders)
	}
	if metrics.CompletedOrders > 0 {
		metrics.AverageDeliveryMinutes = totalMinutes / float64(metrics.CompletedOrders)
	}

	for _, bucket := range deliveryBuckets {
		if count := bucketCounts[bucket]; count > 0 {
			metrics.DeliveryTimeHistogram = append(metrics.DeliveryTimeHistogram, domain.SeriesPoint{Label: bucket, Count: count})
		}
	}

	return metrics
}

// DeliveryBucket classifica o tempo de entrega. Valores negativos caem na primeira faixa.
func DeliveryBucket(minutes float64) string {
	switch {
	case minutes < 30:
		return deliveryBuckets[0]
	case minutes < 60:
		return deliveryBuckets[1]
	case minutes < 90:
		return deliveryBuckets[2]
	default:
		return deliveryBuckets[3]
	}
}

func PaymentDistribution(orders []domain.Order) []domain.SeriesPoint {
	return countInEncounterOrder(orders, func(order domain.Order) (string, bool) {
		if order.PaymentMethod == nil || strings.TrimSpace(*order.PaymentMethod) == "" {
			return PaymentMethodFallback, true
		}
		return strings.TrimSpace(*order.PaymentMethod), true
	})
}

// TopCouriers conta pedidos por entregador e devolve os maiores, no máximo limit.
// Empates mantêm a ordem em que os entregadores aparecem.
func TopCouriers(orders []domain.Order, limit int) []domain.SeriesPoint {
	points := countInEncounterOrder(orders, courierLabel)

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Count > points[j].Count
	})

	if limit >= 0 && len(points) > limit {
		points = points[:limit]
	}

	return points
}

func ActiveCouriers(orders []domain.Order) int {
	return len(countInEncounterOrder(orders, courierLabel))
}

func StatusBreakdown(orders []domain.Order) []domain.SeriesPoint {
	return countInEncounterOrder(orders, func(order domain.Order) (string, bool) {
		return string(order.Status), true
	})
}

func courierLabel(order domain.Order) (string, bool) {
	if order.Courier == nil {
		return "", false
	}
	courier := strings.TrimSpace(*order.Courier)
	return courier, courier != ""
}

func countInEncounterOrder(orders []domain.Order, label func(domain.Order) (string, bool)) []domain.SeriesPoint {
	points := make([]domain.SeriesPoint, 0)
	index := make(map[string]int)

	for _, order := range orders {
		key, ok := label(order)
		if !ok {
			continue
		}

		if i, exists := index[key]; exists {
			points[i].Count++
			continue
		}

		index[key] = len(points)
		points = append(points, domain.SeriesPoint{Label: key, Count: 1})
	}

	return points
}
