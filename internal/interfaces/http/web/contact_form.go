package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/luxe-studio/luxe-site/internal/interfaces/http/common"
	"github.com/luxe-studio/luxe-site/internal/metrics"
	"github.com/luxe-studio/luxe-site/internal/public/domain"
	"github.com/luxe-studio/luxe-site/internal/site"
	"github.com/luxe-studio/luxe-site/internal/site/components"
)

const channelForm = "form"

// contactFormHandler accepts the form-encoded post made when scripts are off
// and renders the page in the resulting form state.
func (h *Handler) contactFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := components.DefaultPageState()
		state.Year = h.now().Year()

		r.Body = http.MaxBytesReader(w, r.Body, common.MaxContactRequestBody)
		if err := r.ParseForm(); err != nil {
			status := http.StatusBadRequest
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				status = http.StatusRequestEntityTooLarge
			}
			h.logger.Info("rejected contact form body", zap.Int("status", status), zap.Error(err))
			metrics.RecordSubmission(channelForm, metrics.OutcomeInvalid)
			state.Form.Submit()
			state.Form.Resolve(false)
			h.render(w, status, components.LandingPage(state))
			return
		}

		state.Form.Values = site.FormValues{
			Name:    r.PostForm.Get("name"),
			Phone:   r.PostForm.Get("phone"),
			Message: r.PostForm.Get("message"),
		}
		state.Form.Submit()

		submission := domain.ContactSubmission{
			Name:    state.Form.Values.Name,
			Phone:   state.Form.Values.Phone,
			Message: state.Form.Values.Message,
		}
		outcome, err := h.relay.Relay(r.Context(), submission)
		common.RecordRelayResult(h.logger, channelForm, outcome, err)
		state.Form.Resolve(err == nil)

		status := http.StatusOK
		if err != nil {
			status = http.StatusInternalServerError
		}
		h.render(w, status, components.LandingPage(state))
	}
}
