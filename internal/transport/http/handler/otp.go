package handler

import (
	"log/slog"
	"net/http"

	"github.com/tasker-otp/internal/application/otp"
	"github.com/tasker-otp/internal/domain"
)

// OTPHandler serves the send-otp and verify-otp endpoints.
type OTPHandler struct {
	svc otp.Service
	log *slog.Logger
}

func NewOTPHandler(svc otp.Service, log *slog.Logger) *OTPHandler {
	return &OTPHandler{svc: svc, log: log}
}

func (h *OTPHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.IssueOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgEmailRequired)
		return
	}
	issued, err := h.svc.Issue(r.Context(), req)
	if err != nil {
		status, body := issueFailure(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("send-otp error", "err", err)
		}
		writeJSON(w, status, body)
		return
	}
	writeJSON(w, http.StatusOK, OTPEnvelope{Success: true, Token: issued.Token})
}

func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgVerifyFields)
		return
	}
	if _, err := h.svc.Verify(r.Context(), req); err != nil {
		status, body := verifyFailure(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("verify-otp error", "err", err)
		}
		writeJSON(w, status, body)
		return
	}
	writeJSON(w, http.StatusOK, OTPEnvelope{Success: true, Message: msgVerifySucceeded})
}

// Preflight answers OPTIONS with 200 and no body.
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
