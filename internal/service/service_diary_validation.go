package service

import (
	"context"
	"fmt"

	"github.com/pkms-go/diary-keeper/internal/validators"
	"github.com/pkms-go/diary-keeper/models"
)

// DiaryValidationService validates requests before handing them to the
// wrapped [DiaryService]. Every validation failure wraps
// [ErrInvalidDataProvided].
type DiaryValidationService struct {
	inner     DiaryService
	validator validators.Validator
}

func NewDiaryValidationService() DiaryServiceWrapper {
	return &DiaryValidationService{
		validator: validators.NewDiaryValidator(),
	}
}

// Wrap implements [DiaryServiceWrapper].
func (v *DiaryValidationService) Wrap(inner DiaryService) DiaryService {
	v.inner = inner
	return v
}

func (v *DiaryValidationService) CreateEntry(ctx context.Context, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DiaryEntryResponse{}, invalid(err)
	}

	return v.inner.CreateEntry(ctx, req)
}

func (v *DiaryValidationService) GetEntry(ctx context.Context, userID int64, ref models.EntryRef, decrypt bool) (models.DiaryEntryResponse, error) {
	if ref.IsZero() {
		return models.DiaryEntryResponse{}, invalid(models.ErrInvalidEntryRef)
	}

	return v.inner.GetEntry(ctx, userID, ref, decrypt)
}

func (v *DiaryValidationService) ListEntries(ctx context.Context, filter models.DiaryEntryFilter) ([]models.DiaryEntry, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, fmt.Errorf("%w: date range start is after its end", ErrInvalidDataProvided)
	}

	return v.inner.ListEntries(ctx, filter)
}

func (v *DiaryValidationService) UpdateEntry(ctx context.Context, ref models.EntryRef, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error) {
	if ref.IsZero() {
		return models.DiaryEntryResponse{}, invalid(models.ErrInvalidEntryRef)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DiaryEntryResponse{}, invalid(err)
	}

	return v.inner.UpdateEntry(ctx, ref, req)
}

func (v *DiaryValidationService) DeleteEntry(ctx context.Context, userID int64, ref models.EntryRef) error {
	if ref.IsZero() {
		return invalid(models.ErrInvalidEntryRef)
	}

	return v.inner.DeleteEntry(ctx, userID, ref)
}

func (v *DiaryValidationService) CommitMedia(ctx context.Context, req models.MediaCommitRequest) (models.DiaryMedia, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DiaryMedia{}, invalid(err)
	}

	return v.inner.CommitMedia(ctx, req)
}

func (v *DiaryValidationService) ListMedia(ctx context.Context, userID, entryID int64) ([]models.DiaryMedia, error) {
	if entryID <= 0 {
		return nil, invalid(validators.ErrInvalidEntryID)
	}

	return v.inner.ListMedia(ctx, userID, entryID)
}

func (v *DiaryValidationService) DownloadMedia(ctx context.Context, userID, mediaID int64) (models.DiaryMedia, string, func(), error) {
	if mediaID <= 0 {
		return models.DiaryMedia{}, "", nil, fmt.Errorf("%w: invalid media id", ErrInvalidDataProvided)
	}

	return v.inner.DownloadMedia(ctx, userID, mediaID)
}

func (v *DiaryValidationService) DeleteMedia(ctx context.Context, userID, mediaID int64) error {
	if mediaID <= 0 {
		return fmt.Errorf("%w: invalid media id", ErrInvalidDataProvided)
	}

	return v.inner.DeleteMedia(ctx, userID, mediaID)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
