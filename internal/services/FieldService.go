package services

import (
	"context"
	"errors"
	"iconpicker/internal/cms"
	"iconpicker/internal/models"
	"iconpicker/internal/providers"
	"slices"
	"strings"
)

var ErrInvalidField = errors.New("item id and field path (field or field.locale) are required")

func validFieldTarget(itemID, fieldPath string) bool {
	parts := strings.Split(fieldPath, ".")
	return itemID != "" && len(parts) <= 2 && !slices.Contains(parts, "")
}

type FieldServiceInterface interface {
	Select(ctx context.Context, itemID, fieldPath, icon string) error
	Clear(ctx context.Context, itemID, fieldPath string) error
}

type FieldService struct {
	items  cms.ItemWriter
	logger providers.Logger
}

func NewFieldService(items cms.ItemWriter, logger providers.Logger) FieldServiceInterface {
	return &FieldService{items: items, logger: logger}
}

// Select stores the picked icon; an empty name clears the field.
func (fs *FieldService) Select(ctx context.Context, itemID, fieldPath, icon string) error {
	if icon == "" {
		return fs.Clear(ctx, itemID, fieldPath)
	}
	if !validFieldTarget(itemID, fieldPath) {
		return ErrInvalidField
	}
	value := models.EncodeFieldValue(icon)
	if err := fs.items.SetFieldValue(ctx, itemID, fieldPath, &value); err != nil {
		fs.logger.Errorf(providers.TypePost, "Failed to set %s on item %s: %s", fieldPath, itemID, err)
		return err
	}
	return nil
}

func (fs *FieldService) Clear(ctx context.Context, itemID, fieldPath string) error {
	if !validFieldTarget(itemID, fieldPath) {
		return ErrInvalidField
	}
	if err := fs.items.SetFieldValue(ctx, itemID, fieldPath, nil); err != nil {
		fs.logger.Errorf(providers.TypePost, "Failed to clear %s on item %s: %s", fieldPath, itemID, err)
		return err
	}
	return nil
}
