package repository

import (
	app "frameless/src/app"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type (
	// ContentFilter is the exact-match predicate set for content listings.
	ContentFilter struct {
		Theme    string
		IsPublic *bool
	}

	ContentPatch struct {
		Title     *string
		Content   *string
		Theme     *string
		IsStory   *bool
		IsPublic  *bool
		ImageURL1 *string
		ImageURL2 *string
		ImageURL3 *string
		Caption1  *string
		Caption2  *string
		Caption3  *string
	}

	ContentRepository struct {
		db *gorm.DB
	}
)

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) Create(ctx context.Context, content *app.GeneratedContent) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(content).Error
	})
	if err != nil {
		return errors.Wrap(err, "create content")
	}
	return nil
}

func (r *ContentRepository) GetByID(ctx context.Context, id uint) (*app.GeneratedContent, error) {
	var content app.GeneratedContent
	err := r.db.WithContext(ctx).First(&content, id).Error
	if err := translate(err); err != nil {
		return nil, errors.Wrap(err, "get content")
	}
	return &content, nil
}

func (r *ContentRepository) List(ctx context.Context, filter ContentFilter, offset, limit int) ([]app.GeneratedContent, error) {
	contents := []app.GeneratedContent{}
	query := r.db.WithContext(ctx)
	if filter.Theme != "" {
		query = query.Where("theme = ?", filter.Theme)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if err := query.Offset(offset).Limit(limit).Find(&contents).Error; err != nil {
		return nil, errors.Wrap(err, "list content")
	}
	return contents, nil
}

func (r *ContentRepository) Update(ctx context.Context, id uint, patch ContentPatch) (*app.GeneratedContent, error) {
	var content app.GeneratedContent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&content, id).Error; err != nil {
			return err
		}
		if patch.Title != nil {
			content.Title = *patch.Title
		}
		if patch.Content != nil {
			content.Content = *patch.Content
		}
		if patch.Theme != nil {
			content.Theme = *patch.Theme
		}
		if patch.IsStory != nil {
			content.IsStory = *patch.IsStory
		}
		if patch.IsPublic != nil {
			content.IsPublic = *patch.IsPublic
		}
		if patch.ImageURL1 != nil {
			content.ImageURL1 = *patch.ImageURL1
		}
		if patch.ImageURL2 != nil {
			content.ImageURL2 = *patch.ImageURL2
		}
		if patch.ImageURL3 != nil {
			content.ImageURL3 = *patch.ImageURL3
		}
		if patch.Caption1 != nil {
			content.Caption1 = *patch.Caption1
		}
		if patch.Caption2 != nil {
			content.Caption2 = *patch.Caption2
		}
		if patch.Caption3 != nil {
			content.Caption3 = *patch.Caption3
		}
		return tx.Save(&content).Error
	})
	if err := translate(err); err != nil {
		return nil, errors.Wrap(err, "update content")
	}
	return &content, nil
}

// Delete reports whether a row existed and was removed.
func (r *ContentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&app.GeneratedContent{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "delete content")
	}
	return deleted, nil
}
