package enquiry

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rnperera/portfolio-backend/internal/observability/metrics"
	"github.com/rnperera/portfolio-backend/pkg/logging"
)

// Handler is the server-side trust boundary for enquiry submissions. It
// never relies on the client having validated anything.
type Handler struct {
	recorder Recorder
	sender   EmailSender
	metrics  *metrics.EnquiryMetrics
	logger   *logging.Logger
}

// NewHandler creates an enquiry handler. A nil sender enables log-only mode:
// submissions are recorded and acknowledged but no email is sent.
func NewHandler(recorder Recorder, sender EmailSender, m *metrics.EnquiryMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		recorder: recorder,
		sender:   sender,
		metrics:  m,
		logger:   logger,
	}
}

type submitResponse struct {
	OK      bool   `json:"ok"`
	Emailed bool   `json:"emailed"`
	ID      string `json:"id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Submit handles POST /api/enquiry requests.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	var payload Enquiry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// A body that fails to parse validates as an empty submission and
		// is rejected by the name check below.
		h.logger.Debug("enquiry body did not parse", "error", err)
	}

	if ferr := payload.Validate(); ferr != nil {
		h.metrics.ObserveSubmission("invalid")
		h.logger.Info("enquiry rejected", "field", ferr.Field)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ferr.Reason})
		return
	}

	norm := payload.Normalized()
	h.metrics.ObserveSubmission("accepted")

	// Record before attempting delivery so an audit trail exists even if
	// the provider call fails.
	sub, err := h.recorder.Record(r.Context(), norm)
	if err != nil {
		h.logger.Error("failed to record enquiry", "error", err)
	} else {
		h.logger.Info("new enquiry",
			"id", sub.ID,
			"category", norm.Type,
			"category_detail", norm.Other,
			"name", norm.Name,
			"email", norm.Email,
			"phone", norm.Phone,
			"received_at", sub.ReceivedAt.Format(time.RFC3339),
		)
	}

	if h.sender == nil {
		h.metrics.ObserveDelivery("skipped", 0)
		writeJSON(w, http.StatusOK, submitResponse{OK: true, Emailed: false})
		return
	}

	start := time.Now()
	id, err := h.sender.Send(r.Context(), EmailForSubmission(norm))
	elapsed := time.Since(start).Seconds()
	if errors.Is(err, ErrProviderRejected) {
		h.metrics.ObserveDelivery("rejected", elapsed)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "Email provider rejected the request"})
		return
	}
	if err != nil {
		// Provider detail stays in the logs; the client gets a generic
		// message.
		h.metrics.ObserveDelivery("failed", elapsed)
		h.logger.Error("enquiry delivery failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Email failed to send. Please try again."})
		return
	}

	h.metrics.ObserveDelivery("sent", elapsed)
	writeJSON(w, http.StatusOK, submitResponse{OK: true, Emailed: true, ID: id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
