package public

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/luxe-studio/luxe-site/internal/interfaces/http/common"
	"github.com/luxe-studio/luxe-site/internal/metrics"
	publicapp "github.com/luxe-studio/luxe-site/internal/public/application"
)

const channelAPI = "api"

func (h *Handler) contactHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req contactRequest
		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxContactRequestBody))
		// an empty body is treated as an empty submission
		if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			status := http.StatusBadRequest
			message := "So'rov formati noto'g'ri"
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				status = http.StatusRequestEntityTooLarge
				message = "So'rov hajmi juda katta"
			}
			h.logger.Info("rejected contact request body", zap.Int("status", status), zap.Error(err))
			metrics.RecordSubmission(channelAPI, metrics.OutcomeInvalid)
			common.WriteJSON(h.logger, w, status, contactResponse{Success: false, Error: message})
			return
		}

		outcome, err := h.relay.Relay(r.Context(), req.toDomain())
		common.RecordRelayResult(h.logger, channelAPI, outcome, err)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, contactResponse{
				Success: false,
				Error:   common.GenericErrorMessage,
			})
			return
		}

		if outcome == publicapp.OutcomeSkipped {
			common.WriteJSON(h.logger, w, http.StatusOK, contactResponse{
				Success: true,
				Message: common.SkippedRelayMessage,
			})
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, contactResponse{Success: true})
	}
}
