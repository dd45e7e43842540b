package services

import (
	"io"

	"github.com/pkg/errors"
	"github.com/socialraccoon/api/file_store"
	"github.com/socialraccoon/api/model"
	Logger "github.com/socialraccoon/api/utils/log"
	"gorm.io/gorm"
)

// UserService owns user creation and the deletion cascade. All collaborators
// are supplied at construction so the dependency graph stays acyclic.
type UserService struct {
	db        *gorm.DB
	reactions *ReactionService
	images    *ImageProfileService
	store     file_store.ProfileImageStore
}

func NewUserService(db *gorm.DB, reactions *ReactionService, images *ImageProfileService, store file_store.ProfileImageStore) *UserService {
	return &UserService{
		db:        db,
		reactions: reactions,
		images:    images,
		store:     store,
	}
}

func (s *UserService) FindAll() ([]*model.User, error) {
	var users []*model.User
	if err := s.db.Preload("Profile.Images").Order("id").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "fail to list users")
	}
	return users, nil
}

func (s *UserService) FindById(id int) (*model.User, error) {
	var user model.User
	queryResult := s.db.Preload("Profile.Images").Where("id = ?", id).First(&user)
	if queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("user %d not found", id)
	}
	return &user, nil
}

// Save persists a new user together with its profile and a single profile
// image pointing at the placeholder url. The user must carry a profile.
func (s *UserService) Save(user *model.User) error {
	if user.Profile == nil {
		return NewValidationError("user must have a profile")
	}

	user.Profile.Images = []*model.ImageProfile{{
		ImageUrl:          model.DefaultProfileImageUrl,
		ImageThumbnailUrl: model.DefaultProfileImageUrl,
	}}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("user with email %s already exists", user.Email)
			}
			return errors.Wrap(err, "fail to create user")
		}
		return nil
	})
}

// SaveWithImage is Save with an uploaded profile picture instead of the
// placeholder. A storage failure is surfaced as StorageError, the user is
// not persisted in that case.
func (s *UserService) SaveWithImage(user *model.User, r io.Reader, fileName string) error {
	if user.Profile == nil {
		return NewValidationError("user must have a profile")
	}

	key, err := s.store.Store(r, fileName)
	if err != nil {
		return NewStorageError(err, "fail to store profile image %s", fileName)
	}
	url := s.store.GetUrlFromKey(key)

	user.Profile.Images = []*model.ImageProfile{{
		ImageUrl:          url,
		ImageThumbnailUrl: url,
	}}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return NewValidationError("user with email %s already exists", user.Email)
			}
			return errors.Wrap(err, "fail to create user")
		}
		return nil
	})
}

func (s *UserService) Update(user *model.User) error {
	existing, err := s.FindById(user.Id)
	if err != nil {
		return err
	}
	existing.Name = user.Name
	existing.Email = user.Email
	if err := s.db.Save(existing).Error; err != nil {
		return errors.Wrap(err, "fail to update user")
	}
	*user = *existing
	return nil
}

// DeleteProfileImage resets the user's current profile image back to the
// placeholder. The image row is overwritten, never deleted, so the profile
// keeps exactly one image.
func (s *UserService) DeleteProfileImage(userId int) error {
	if _, err := s.FindById(userId); err != nil {
		return err
	}

	image, err := s.images.GetByUserId(userId)
	if err != nil {
		return err
	}
	if image.IsDefault() {
		return NewValidationError("user %d already has the default profile image", userId)
	}

	image.ImageUrl = model.DefaultProfileImageUrl
	image.ImageThumbnailUrl = model.DefaultProfileImageUrl
	return s.images.Update(image)
}

// DeleteUser removes the user and everything keyed on it. Reactions are
// deleted first inside the same transaction, otherwise the user row delete
// would trip their foreign key.
func (s *UserService) DeleteUser(userId int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		queryResult := tx.Where("id = ?", userId).First(&user)
		if queryResult.RowsAffected != 1 {
			return NewNotFoundError("user %d not found", userId)
		}

		if err := s.reactions.DeleteByUserIdTx(tx, userId); err != nil {
			return err
		}

		Logger.Log.Info("delete user and owned rows, user_id=", userId)
		if err := tx.Delete(&user).Error; err != nil {
			return errors.Wrap(err, "fail to delete user")
		}
		return nil
	})
}

// DeleteById is a direct row delete without the reaction cascade. The caller
// is responsible for dependent rows; prefer DeleteUser on the API path.
func (s *UserService) DeleteById(id int) error {
	queryResult := s.db.Delete(&model.User{}, id)
	if queryResult.Error != nil {
		return errors.Wrap(queryResult.Error, "fail to delete user")
	}
	if queryResult.RowsAffected != 1 {
		return NewNotFoundError("user %d not found", id)
	}
	return nil
}
