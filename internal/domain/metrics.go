package domain

// SeriesPoint é um ponto de gráfico: rótulo e contagem
type SeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type DashboardMetrics struct {
	TotalOrders               int           `json:"total_orders"`
	TotalRevenue              float64       `json:"total_revenue"`
	AverageOrderValue         float64       `json:"average_order_value"`
	CompletedOrders           int           `json:"completed_orders"`
	AverageDeliveryMinutes    float64       `json:"average_delivery_minutes"`
	ActiveCouriers            int           `json:"active_couriers"`
	DeliveryTimeHistogram     []SeriesPoint `json:"delivery_time_histogram"`
	PaymentMethodDistribution []SeriesPoint `json:"payment_method_distribution"`
	TopCouriers               []SeriesPoint `json:"top_couriers"`
	StatusBreakdown           []SeriesPoint `json:"status_breakdown"`
}
