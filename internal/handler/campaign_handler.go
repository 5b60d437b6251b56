// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	appErrors "github.com/phishdash/phishdash-backend/internal/errors"
	"github.com/phishdash/phishdash-backend/internal/repository"
	"github.com/phishdash/phishdash-backend/internal/service"
)

// CampaignHandler holds the dependencies for the campaign stats endpoints
type CampaignHandler struct {
	Analytics *service.AnalyticsService
	AuditRepo repository.AuditRepositoryInterface
}

// GetCampaignAnalyticsHandler returns the email-profile stats for a campaign
func (h *CampaignHandler) GetCampaignAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stats, err := h.Analytics.GetCampaignAnalytics(id)
	if err != nil {
		log.Println("❌ Error fetching campaign analytics:", err)
		status := http.StatusInternalServerError
		if _, ok := err.(*appErrors.ErrCampaignNotFound); ok {
			status = http.StatusNotFound
		}
		http.Error(w, "failed to fetch analytics: "+err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// ListAuditHandler returns the most recent audit entries for a campaign
func (h *CampaignHandler) ListAuditHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.AuditRepo.ListByCampaign(id, limit)
	if err != nil {
		http.Error(w, "failed to fetch audit log: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"campaign_id": id,
		"entries":     entries,
	})
}
