package services

import (
	"github.com/pkg/errors"
	"github.com/socialraccoon/api/model"
	"gorm.io/gorm"
)

type ImageProfileService struct {
	db *gorm.DB
}

func NewImageProfileService(db *gorm.DB) *ImageProfileService {
	return &ImageProfileService{db: db}
}

func (s *ImageProfileService) FindById(id int) (*model.ImageProfile, error) {
	var image model.ImageProfile
	queryResult := s.db.Where("id = ?", id).First(&image)
	if queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("profile image %d not found", id)
	}
	return &image, nil
}

// GetByUserId resolves the current profile image of a user through the
// profile relation.
func (s *ImageProfileService) GetByUserId(userId int) (*model.ImageProfile, error) {
	var image model.ImageProfile
	queryResult := s.db.
		Joins("JOIN profiles ON profiles.id = image_profiles.profile_id").
		Where("profiles.user_id = ?", userId).
		Order("image_profiles.id").
		First(&image)
	if queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("profile image for user %d not found", userId)
	}
	return &image, nil
}

func (s *ImageProfileService) Save(image *model.ImageProfile) error {
	if err := s.db.Create(image).Error; err != nil {
		return errors.Wrap(err, "fail to create profile image")
	}
	return nil
}

func (s *ImageProfileService) Update(image *model.ImageProfile) error {
	if err := s.db.Save(image).Error; err != nil {
		return errors.Wrap(err, "fail to update profile image")
	}
	return nil
}
