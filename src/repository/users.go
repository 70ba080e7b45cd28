package repository

import (
	app "frameless/src/app"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type (
	// UserPatch lists the optional fields of a partial user update. A nil
	// field leaves the column untouched. HashedPassword is already the
	// bcrypt digest; hashing happens before the patch reaches the store.
	UserPatch struct {
		Username       *string
		Email          *string
		HashedPassword *string
	}

	UserRepository struct {
		db *gorm.DB
		// cascadeDelete controls whether deleting a user removes its
		// owned images and contents in the same transaction. Off by
		// default: orphaned rows keep their dangling owner id.
		cascadeDelete bool
	}
)

func NewUserRepository(db *gorm.DB, cascadeDelete bool) *UserRepository {
	return &UserRepository{db: db, cascadeDelete: cascadeDelete}
}

func (r *UserRepository) Create(ctx context.Context, user *app.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err := translate(err); err != nil {
		return errors.Wrap(err, "create user")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*app.User, error) {
	var user app.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err := translate(err); err != nil {
		return nil, errors.Wrap(err, "get user")
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*app.User, error) {
	var user app.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err := translate(err); err != nil {
		return nil, errors.Wrap(err, "get user by username")
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]app.User, error) {
	users := []app.User{}
	err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

// Update merges the present patch fields onto the stored row. An empty
// patch leaves the row unchanged.
func (r *UserRepository) Update(ctx context.Context, id uint, patch UserPatch) (*app.User, error) {
	var user app.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if patch.Username != nil {
			user.Username = *patch.Username
		}
		if patch.Email != nil {
			user.Email = *patch.Email
		}
		if patch.HashedPassword != nil {
			user.HashedPassword = *patch.HashedPassword
		}
		return tx.Save(&user).Error
	})
	if err := translate(err); err != nil {
		return nil, errors.Wrap(err, "update user")
	}
	return &user, nil
}

// Delete reports whether a row existed and was removed.
func (r *UserRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&app.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		if r.cascadeDelete {
			if err := tx.Where("owner_id = ?", id).Delete(&app.Image{}).Error; err != nil {
				return err
			}
			if err := tx.Where("owner_id = ?", id).Delete(&app.GeneratedContent{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "delete user")
	}
	return deleted, nil
}
