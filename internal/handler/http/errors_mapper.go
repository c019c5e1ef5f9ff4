package http

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/pkms-go/diary-keeper/internal/app"
	"github.com/pkms-go/diary-keeper/internal/container"
	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/service"
	"github.com/pkms-go/diary-keeper/internal/store"
	"github.com/pkms-go/diary-keeper/internal/utils"
	"github.com/pkms-go/diary-keeper/models"
)

// errorStatus maps an error to its response. An empty detail means the
// error text itself is returned.
type errorStatus struct {
	target error
	status int
	detail string
}

// errorStatuses is matched in order, first match wins. Storage errors wrap
// the fs cause, so the fs entries must come before service.ErrStorage.
var errorStatuses = []errorStatus{
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: models.ErrInvalidEntryRef, status: http.StatusBadRequest},

	{target: service.ErrAuthentication, status: http.StatusUnauthorized, detail: app.MsgInvalidDiaryPassword},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized},
	{target: service.ErrLocked, status: http.StatusForbidden, detail: app.MsgDiaryLocked},

	{target: service.ErrEncryptionNotSetup, status: http.StatusConflict},
	{target: service.ErrEncryptionAlreadySetup, status: http.StatusConflict},

	{target: store.ErrEntryNotFound, status: http.StatusNotFound},
	{target: store.ErrMediaNotFound, status: http.StatusNotFound},
	{target: store.ErrEntryAlreadyExists, status: http.StatusConflict},

	{target: container.ErrInvalidContainer, status: http.StatusUnprocessableEntity, detail: app.MsgFileCorrupted},
	{target: crypto.ErrIntegrity, status: http.StatusUnprocessableEntity, detail: app.MsgIntegrityCheckFailed},

	{target: fs.ErrNotExist, status: http.StatusNotFound, detail: app.MsgFileNotFound},
	{target: fs.ErrPermission, status: http.StatusForbidden, detail: app.MsgFileNotAccessible},
	{target: service.ErrStorage, status: http.StatusServiceUnavailable, detail: app.MsgStorageUnavailable},
}

// statusFromError returns the response status and the client-facing detail
// for err. Unknown errors are reported as 500 without details.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.target) {
			continue
		}
		if e.detail != "" {
			return e.status, e.detail
		}
		if e.status == http.StatusBadRequest {
			return e.status, err.Error()
		}
		return e.status, e.target.Error()
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the mapped error response.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, detail := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteError(w, detail, status)
}

// writeBadRequest reports a malformed request that never reached a service.
func writeBadRequest(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	logger.FromRequest(r).Warn().Err(err).Str("func", funcName).Msg("bad request")
	utils.WriteError(w, err.Error(), http.StatusBadRequest)
}
