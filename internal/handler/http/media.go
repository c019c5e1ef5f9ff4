// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/utils"
	"github.com/pkms-go/diary-keeper/internal/validators"
	"github.com/pkms-go/diary-keeper/models"
)

const (
	// multipartMemory is the part of an upload kept in memory; the rest is
	// spooled to disk by the multipart reader.
	multipartMemory = 32 << 20

	// multipartOverhead covers the form fields around the file part.
	multipartOverhead = 1 << 20

	uploadFileField = "file"
)

// commitMedia accepts a multipart form with the fields entry_id, media_type,
// optional caption and the file itself under "file".
func (h *Handler) commitMedia(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.commitMedia"

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, validators.MaxMediaSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.WriteError(w, validators.ErrMediaTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		writeBadRequest(w, r, funcName, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	entryID, err := strconv.ParseInt(r.FormValue("entry_id"), 10, 64)
	if err != nil || entryID <= 0 {
		writeBadRequest(w, r, funcName, errInvalidEntryID)
		return
	}

	file, header, err := r.FormFile(uploadFileField)
	if err != nil {
		writeBadRequest(w, r, funcName, errNoFileUploaded)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeBadRequest(w, r, funcName, fmt.Errorf("read uploaded file: %w", err))
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "application/octet-stream" {
		mimeType = ""
	}

	media, err := h.services.DiaryService.CommitMedia(r.Context(), models.MediaCommitRequest{
		UserID:       userID,
		EntryID:      entryID,
		OriginalName: header.Filename,
		MimeType:     mimeType,
		MediaType:    models.MediaType(r.FormValue("media_type")),
		Caption:      r.FormValue("caption"),
		Data:         data,
	})
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}

	utils.WriteJSON(w, media, http.StatusCreated)
}

func (h *Handler) listMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, entryRefParam), 10, 64)
	if err != nil || entryID <= 0 {
		writeBadRequest(w, r, "*Handler.listMedia", errInvalidEntryID)
		return
	}

	media, err := h.services.DiaryService.ListMedia(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, r, "*Handler.listMedia", err)
		return
	}
	if media == nil {
		media = []models.DiaryMedia{}
	}

	utils.WriteJSON(w, media, http.StatusOK)
}

// downloadMedia streams the decrypted attachment. The plaintext copy only
// exists for the duration of the request.
func (h *Handler) downloadMedia(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.downloadMedia"

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	mediaID, ok := mediaIDFromRequest(w, r, funcName)
	if !ok {
		return
	}

	media, tempPath, cleanup, err := h.services.DiaryService.DownloadMedia(r.Context(), userID, mediaID)
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}
	defer cleanup()

	f, err := os.Open(tempPath)
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}

	if media.MimeType != "" {
		w.Header().Set("Content-Type", media.MimeType)
	}
	if media.OriginalName != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": media.OriginalName}))
	}
	w.Header().Set("Cache-Control", "no-store")

	logger.FromRequest(r).Debug().Int64("media_id", mediaID).Int64("size", info.Size()).Msg("serving decrypted media")
	http.ServeContent(w, r, media.OriginalName, info.ModTime(), f)
}

func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	mediaID, ok := mediaIDFromRequest(w, r, "*Handler.deleteMedia")
	if !ok {
		return
	}

	if err := h.services.DiaryService.DeleteMedia(r.Context(), userID, mediaID); err != nil {
		writeServiceError(w, r, "*Handler.deleteMedia", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func mediaIDFromRequest(w http.ResponseWriter, r *http.Request, funcName string) (int64, bool) {
	mediaID, err := strconv.ParseInt(chi.URLParam(r, mediaIDParam), 10, 64)
	if err != nil || mediaID <= 0 {
		writeBadRequest(w, r, funcName, errInvalidMediaID)
		return 0, false
	}
	return mediaID, true
}
