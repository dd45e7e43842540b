package services

import (
	"github.com/pkg/errors"
	"github.com/socialraccoon/api/model"
	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) FindAll() ([]*model.Profile, error) {
	var profiles []*model.Profile
	if err := s.db.Preload("Images").Order("id").Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "fail to list profiles")
	}
	return profiles, nil
}

func (s *ProfileService) FindById(id int) (*model.Profile, error) {
	var profile model.Profile
	queryResult := s.db.Preload("Images").Where("id = ?", id).First(&profile)
	if queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("profile %d not found", id)
	}
	return &profile, nil
}

func (s *ProfileService) GetProfileByUserId(userId int) (*model.Profile, error) {
	var profile model.Profile
	queryResult := s.db.Preload("Images").Where("user_id = ?", userId).First(&profile)
	if queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("profile for user %d not found", userId)
	}
	return &profile, nil
}

func (s *ProfileService) Save(profile *model.Profile) error {
	if err := s.db.Create(profile).Error; err != nil {
		return errors.Wrap(err, "fail to create profile")
	}
	return nil
}

// Update rewrites the profile's own columns. The image relation is managed
// by UserService at creation time and left untouched here.
func (s *ProfileService) Update(profile *model.Profile) error {
	existing, err := s.FindById(profile.Id)
	if err != nil {
		return err
	}
	existing.Description = profile.Description
	if err := s.db.Save(existing).Error; err != nil {
		return errors.Wrap(err, "fail to update profile")
	}
	*profile = *existing
	return nil
}
