package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"studycost-agent/domain"
	"studycost-agent/service"
)

type EstimateHandler struct {
	service *service.EstimateService
}

func NewEstimateHandler(service *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

// estimateRequest accepts arbitrary JSON values per field; anything that is
// not a usable number coerces to its default instead of rejecting the
// request.
type estimateRequest struct {
	Tuition          any `json:"tuition"`
	Months           any `json:"months"`
	MonthlyRent      any `json:"monthlyRent"`
	MonthlyFood      any `json:"monthlyFood"`
	MonthlyTransport any `json:"monthlyTransport"`
	Scholarship      any `json:"scholarship"`
}

func (req estimateRequest) toInput() domain.EstimateInput {
	return domain.EstimateInput{
		Tuition:          coerceAmount(req.Tuition),
		Months:           coerceMonths(req.Months),
		MonthlyRent:      coerceAmount(req.MonthlyRent),
		MonthlyFood:      coerceAmount(req.MonthlyFood),
		MonthlyTransport: coerceAmount(req.MonthlyTransport),
		Scholarship:      coerceAmount(req.Scholarship),
	}
}

// coerceAmount turns an arbitrary JSON value into a non-negative finite
// amount; non-numeric, negative and missing values count as zero.
func coerceAmount(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func coerceMonths(v any) int {
	months := int(coerceAmount(v))
	if months <= 0 {
		return service.DefaultMonths
	}
	return months
}

func (h *EstimateHandler) EstimateCost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Error decoding request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.service.EstimateCost(req.toInput())

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("Error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}
