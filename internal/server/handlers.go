package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/leadvane/internal/engine"
	"github.com/abhisek/leadvane/internal/export"
	"github.com/abhisek/leadvane/internal/registry"
	"github.com/abhisek/leadvane/internal/scoring"
)

// Handler is the thin HTTP layer over the engine and its registry. It
// translates outcomes to status codes and holds no business logic.
type Handler struct {
	eng *engine.Engine
	log *slog.Logger
}

func NewHandler(eng *engine.Engine, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{eng: eng, log: log}
}

type commandRequest struct {
	Text string `json:"text"`
}

type commandResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Customer *registry.Record `json:"customer,omitempty"`
}

// HandleCommand runs one natural-language command through the engine.
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	res := h.eng.Process(r.Context(), req.Text)
	writeJSON(w, commandStatusCode(res.Status), commandResponse{
		Status:   string(res.Status),
		Message:  res.Message,
		Customer: res.Record,
	})
}

func commandStatusCode(s engine.Status) int {
	switch s {
	case engine.StatusAdded:
		return http.StatusCreated
	case engine.StatusNotFound:
		return http.StatusNotFound
	case engine.StatusRejected, engine.StatusUninterpretable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusOK
	}
}

type listResponse struct {
	Customers []registry.Record `json:"customers"`
	Count     int               `json:"count"`
}

func (h *Handler) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	records := h.eng.Registry().Records()
	writeJSON(w, http.StatusOK, listResponse{Customers: records, Count: len(records)})
}

func (h *Handler) HandleGetCustomer(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	rec, ok := h.eng.Registry().Get(email)
	if !ok {
		writeError(w, http.StatusNotFound, "no customer with email "+email)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type editRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Score    *int    `json:"score"`
	Category *string `json:"category"`
	KeyInfo  *string `json:"key_info"`
}

// HandleEditCustomer applies a manual field override. Edited values bypass
// the scorer, so score and category may diverge from what the raw input
// would produce.
func (h *Handler) HandleEditCustomer(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	patch := registry.Patch{
		Name:    req.Name,
		Email:   req.Email,
		Score:   req.Score,
		KeyInfo: req.KeyInfo,
	}
	if req.Category != nil {
		tier := scoring.Tier(*req.Category)
		patch.Category = &tier
	}

	out := h.eng.Registry().EditInPlace(email, patch)
	switch out.Status {
	case registry.StatusNotFound:
		writeError(w, http.StatusNotFound, out.Message)
	case registry.StatusInvalid:
		writeError(w, http.StatusUnprocessableEntity, out.Message)
	default:
		writeJSON(w, http.StatusOK, out.Record)
	}
}

// HandleDeleteCustomer removes by exact email. Idempotent, always 204.
func (h *Handler) HandleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	h.eng.Registry().DeleteByKey(chi.URLParam(r, "email"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)
	if err := export.WriteCSV(w, h.eng.Registry().Records()); err != nil {
		h.log.Error("csv export failed", slog.String("error", err.Error()))
	}
}

func (h *Handler) HandleTierChart(w http.ResponseWriter, r *http.Request) {
	records := h.eng.Registry().Records()
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, "no customers to chart")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := export.WriteTierChart(w, records); err != nil && !errors.Is(err, export.ErrNoRecords) {
		h.log.Error("chart export failed", slog.String("error", err.Error()))
	}
}

type statsResponse struct {
	Customers int            `json:"customers"`
	HotLeads  int            `json:"hot_leads"`
	Tiers     map[string]int `json:"tiers"`
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	reg := h.eng.Registry()

	tiers := make(map[string]int, len(scoring.AllTiers()))
	for _, t := range scoring.AllTiers() {
		tiers[string(t)] = 0
	}
	for _, rec := range reg.Records() {
		tiers[string(rec.Category)]++
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Customers: reg.Len(),
		HotLeads:  reg.HotLeadCount(),
		Tiers:     tiers,
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
