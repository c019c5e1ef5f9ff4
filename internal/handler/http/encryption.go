// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/utils"
	"github.com/pkms-go/diary-keeper/models"
)

func (h *Handler) encryptionStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	status, err := h.services.EncryptionService.Status(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.encryptionStatus", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) setupEncryption(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.EncryptionSetupRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, r, "*Handler.setupEncryption", err)
		return
	}

	if err := h.services.EncryptionService.Setup(r.Context(), userID, req); err != nil {
		writeServiceError(w, r, "*Handler.setupEncryption", err)
		return
	}

	logger.FromRequest(r).Info().Msg("diary encryption set up")
	utils.WriteJSON(w, models.EncryptionStatus{IsSetup: true}, http.StatusCreated)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UnlockRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, r, "*Handler.unlock", err)
		return
	}

	status, err := h.services.EncryptionService.Unlock(r.Context(), userID, req.Password)
	if err != nil {
		writeServiceError(w, r, "*Handler.unlock", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	h.services.EncryptionService.Lock(r.Context(), userID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) hint(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	hint, err := h.services.EncryptionService.Hint(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.hint", err)
		return
	}

	utils.WriteJSON(w, hint, http.StatusOK)
}
