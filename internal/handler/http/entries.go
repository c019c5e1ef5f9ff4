// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkms-go/diary-keeper/internal/utils"
	"github.com/pkms-go/diary-keeper/models"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.DiaryEntryRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, r, "*Handler.createEntry", err)
		return
	}
	req.UserID = userID

	entry, err := h.services.DiaryService.CreateEntry(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

// getEntry returns the entry with its encrypted blob. With ?decrypt=true
// the content is decrypted on the server, which needs an unlocked diary.
func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	ref, err := models.ParseEntryRef(chi.URLParam(r, entryRefParam))
	if err != nil {
		writeBadRequest(w, r, "*Handler.getEntry", err)
		return
	}

	decrypt, _ := strconv.ParseBool(r.URL.Query().Get("decrypt"))

	entry, err := h.services.DiaryService.GetEntry(r.Context(), userID, ref, decrypt)
	if err != nil {
		writeServiceError(w, r, "*Handler.getEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

// listEntries accepts optional from, to (YYYY-MM-DD, inclusive) and limit
// query parameters.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	filter, err := parseEntryFilter(r)
	if err != nil {
		writeBadRequest(w, r, "*Handler.listEntries", err)
		return
	}
	filter.UserID = userID

	entries, err := h.services.DiaryService.ListEntries(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, "*Handler.listEntries", err)
		return
	}
	if entries == nil {
		entries = []models.DiaryEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	ref, err := models.ParseEntryRef(chi.URLParam(r, entryRefParam))
	if err != nil {
		writeBadRequest(w, r, "*Handler.updateEntry", err)
		return
	}

	var req models.DiaryEntryRequest
	if err = utils.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, r, "*Handler.updateEntry", err)
		return
	}
	req.UserID = userID

	entry, err := h.services.DiaryService.UpdateEntry(r.Context(), ref, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	ref, err := models.ParseEntryRef(chi.URLParam(r, entryRefParam))
	if err != nil {
		writeBadRequest(w, r, "*Handler.deleteEntry", err)
		return
	}

	if err = h.services.DiaryService.DeleteEntry(r.Context(), userID, ref); err != nil {
		writeServiceError(w, r, "*Handler.deleteEntry", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseEntryFilter(r *http.Request) (models.DiaryEntryFilter, error) {
	var filter models.DiaryEntryFilter
	query := r.URL.Query()

	if v := query.Get("from"); v != "" {
		from, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return filter, errInvalidDate
		}
		filter.From = from
	}
	if v := query.Get("to"); v != "" {
		to, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return filter, errInvalidDate
		}
		filter.To = to
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil || limit == 0 {
			return filter, errInvalidLimit
		}
		filter.Limit = limit
	}

	return filter, nil
}
