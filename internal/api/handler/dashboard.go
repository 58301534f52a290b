package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/usecases/dashboarding"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/utils"
)

type OrderResponse struct {
	domain.Order
	AmountDisplay string `json:"amount_display"`
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

func GetDashboard(dashboarder dashboarding.Dashboarder, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		filter, ok := parseOrderFilter(w, r, loc)
		if !ok {
			return
		}

		metrics, err := dashboarder.GetDashboard(r.Context(), session, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular métricas do dashboard")
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}

func ListOrders(dashboarder dashboarding.Dashboarder, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrAbort(w, r)
		if !ok {
			return
		}

		filter, ok := parseOrderFilter(w, r, loc)
		if !ok {
			return
		}
		filter.Status = strings.TrimSpace(r.URL.Query().Get("status"))
		filter.Search = strings.TrimSpace(r.URL.Query().Get("search"))

		orders, err := dashboarder.ListOrders(r.Context(), session, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar pedidos")
			return
		}

		response := OrdersResponse{Orders: make([]OrderResponse, 0, len(orders)), Total: len(orders)}
		for _, order := range orders {
			response.Orders = append(response.Orders, OrderResponse{
				Order:         order,
				AmountDisplay: utils.FormatBRL(order.Amount),
			})
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

// parseOrderFilter lê start_date e end_date (YYYY-MM-DD) no fuso configurado
func parseOrderFilter(w http.ResponseWriter, r *http.Request, loc *time.Location) (domain.OrderFilter, bool) {
	var filter domain.OrderFilter
	query := r.URL.Query()

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de data inválido. Use YYYY-MM-DD", map[string]any{"start_date": raw})
			return filter, false
		}
		filter.StartDate = startDate
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw, loc)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de data inválido. Use YYYY-MM-DD", map[string]any{"end_date": raw})
			return filter, false
		}
		filter.EndDate = endDate
	}

	return filter, true
}
