package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/service"
	"github.com/pkms-go/diary-keeper/internal/utils"
	"github.com/pkms-go/diary-keeper/models"
)

// ─────────────────────────────────────────────
// AuthService
// ─────────────────────────────────────────────

// fakeAuthService accepts the token "valid-token" for user 1 unless
// parseFn overrides it.
type fakeAuthService struct {
	parseFn func(ctx context.Context, token string) (models.Token, error)
}

func (f *fakeAuthService) CreateToken(_ context.Context, userID int64) (models.Token, error) {
	return models.Token{UserID: userID, SignedString: "valid-token"}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if f.parseFn != nil {
		return f.parseFn(ctx, token)
	}
	if token != "valid-token" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: 1}, nil
}

// ─────────────────────────────────────────────
// AppInfoService
// ─────────────────────────────────────────────

type fakeAppInfoService struct {
	build models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.build.BuildVersion()
}

func (f *fakeAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return f.build
}

// ─────────────────────────────────────────────
// EncryptionService
// ─────────────────────────────────────────────

type fakeEncryptionService struct {
	setupFn  func(ctx context.Context, userID int64, req models.EncryptionSetupRequest) error
	unlockFn func(ctx context.Context, userID int64, password string) (models.EncryptionStatus, error)
	statusFn func(ctx context.Context, userID int64) (models.EncryptionStatus, error)
	hintFn   func(ctx context.Context, userID int64) (models.HintResponse, error)

	lockedUsers []int64
}

func (f *fakeEncryptionService) Setup(ctx context.Context, userID int64, req models.EncryptionSetupRequest) error {
	return f.setupFn(ctx, userID, req)
}

func (f *fakeEncryptionService) Unlock(ctx context.Context, userID int64, password string) (models.EncryptionStatus, error) {
	return f.unlockFn(ctx, userID, password)
}

func (f *fakeEncryptionService) Lock(_ context.Context, userID int64) {
	f.lockedUsers = append(f.lockedUsers, userID)
}

func (f *fakeEncryptionService) Status(ctx context.Context, userID int64) (models.EncryptionStatus, error) {
	return f.statusFn(ctx, userID)
}

func (f *fakeEncryptionService) Hint(ctx context.Context, userID int64) (models.HintResponse, error) {
	return f.hintFn(ctx, userID)
}

// ─────────────────────────────────────────────
// DiaryService
// ─────────────────────────────────────────────

type fakeDiaryService struct {
	createFn   func(ctx context.Context, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error)
	getFn      func(ctx context.Context, userID int64, ref models.EntryRef, decrypt bool) (models.DiaryEntryResponse, error)
	listFn     func(ctx context.Context, filter models.DiaryEntryFilter) ([]models.DiaryEntry, error)
	updateFn   func(ctx context.Context, ref models.EntryRef, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error)
	deleteFn   func(ctx context.Context, userID int64, ref models.EntryRef) error
	commitFn   func(ctx context.Context, req models.MediaCommitRequest) (models.DiaryMedia, error)
	listMedFn  func(ctx context.Context, userID, entryID int64) ([]models.DiaryMedia, error)
	downloadFn func(ctx context.Context, userID, mediaID int64) (models.DiaryMedia, string, func(), error)
	delMediaFn func(ctx context.Context, userID, mediaID int64) error
}

func (f *fakeDiaryService) CreateEntry(ctx context.Context, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeDiaryService) GetEntry(ctx context.Context, userID int64, ref models.EntryRef, decrypt bool) (models.DiaryEntryResponse, error) {
	return f.getFn(ctx, userID, ref, decrypt)
}

func (f *fakeDiaryService) ListEntries(ctx context.Context, filter models.DiaryEntryFilter) ([]models.DiaryEntry, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeDiaryService) UpdateEntry(ctx context.Context, ref models.EntryRef, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error) {
	return f.updateFn(ctx, ref, req)
}

func (f *fakeDiaryService) DeleteEntry(ctx context.Context, userID int64, ref models.EntryRef) error {
	return f.deleteFn(ctx, userID, ref)
}

func (f *fakeDiaryService) CommitMedia(ctx context.Context, req models.MediaCommitRequest) (models.DiaryMedia, error) {
	return f.commitFn(ctx, req)
}

func (f *fakeDiaryService) ListMedia(ctx context.Context, userID, entryID int64) ([]models.DiaryMedia, error) {
	return f.listMedFn(ctx, userID, entryID)
}

func (f *fakeDiaryService) DownloadMedia(ctx context.Context, userID, mediaID int64) (models.DiaryMedia, string, func(), error) {
	return f.downloadFn(ctx, userID, mediaID)
}

func (f *fakeDiaryService) DeleteMedia(ctx context.Context, userID, mediaID int64) error {
	return f.delMediaFn(ctx, userID, mediaID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{build: models.NewAppBuildInfo("test-version", "", "")}
	}
	return NewHandler(services, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// authedRequest builds a request that already passed the auth middleware
// for userID.
func authedRequest(method, target string, body io.Reader, userID int64) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req = injectNopLogger(req)
	return req.WithContext(utils.WithUserID(req.Context(), userID))
}

// serve runs req through the full router with a valid bearer token.
func serve(h *Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer valid-token")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
