package repository

import (
	app "frameless/src/app"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type (
	// ImageFilter is the exact-match predicate set for image listings.
	ImageFilter struct {
		IsPublic *bool
		OwnerID  *uint
	}

	ImagePatch struct {
		URL         *string
		Description *string
		IsPublic    *bool
	}

	ImageRepository struct {
		db *gorm.DB
	}
)

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Create(ctx context.Context, image *app.Image) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(image).Error
	})
	if err != nil {
		return errors.Wrap(err, "create image")
	}
	return nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id uint) (*app.Image, error) {
	var image app.Image
	err := r.db.WithContext(ctx).First(&image, id).Error
	if err := translate(err); err != nil {
		return nil, errors.Wrap(err, "get image")
	}
	return &image, nil
}

func (r *ImageRepository) List(ctx context.Context, filter ImageFilter, offset, limit int) ([]app.Image, error) {
	images := []app.Image{}
	query := r.db.WithContext(ctx)
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if err := query.Offset(offset).Limit(limit).Find(&images).Error; err != nil {
		return nil, errors.Wrap(err, "list images")
	}
	return images, nil
}

func (r *ImageRepository) Update(ctx context.Context, id uint, patch ImagePatch) (*app.Image, error) {
	var image app.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&image, id).Error; err != nil {
			return err
		}
		if patch.URL != nil {
			image.URL = *patch.URL
		}
		if patch.Description != nil {
			image.Description = *patch.Description
		}
		if patch.IsPublic != nil {
			image.IsPublic = *patch.IsPublic
		}
		return tx.Save(&image).Error
	})
	if err := translate(err); err != nil {
		return nil, errors.Wrap(err, "update image")
	}
	return &image, nil
}

// Delete removes the row and returns it, so the caller can clean up the
// backing blob. Returns ErrNotFound if the id does not exist.
func (r *ImageRepository) Delete(ctx context.Context, id uint) (*app.Image, error) {
	var image app.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&image, id).Error; err != nil {
			return err
		}
		return tx.Delete(&image).Error
	})
	if err := translate(err); err != nil {
		return nil, errors.Wrap(err, "delete image")
	}
	return &image, nil
}
