package services

import (
	"github.com/pkg/errors"
	"github.com/socialraccoon/api/model"
	Logger "github.com/socialraccoon/api/utils/log"
	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) FindById(id int) (*model.Post, error) {
	var post model.Post
	queryResult := s.db.Where("id = ?", id).First(&post)
	if queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("post %d not found", id)
	}
	return &post, nil
}

func (s *PostService) GetPostsByUserId(userId int, pageNumber int, pageSize int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.
		Where("user_id = ?", userId).
		Order("id").
		Offset(pageNumber * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "fail to query posts by user")
	}
	return posts, nil
}

func (s *PostService) Save(post *model.Post) error {
	var user model.User
	queryResult := s.db.Where("id = ?", post.UserID).First(&user)
	if queryResult.RowsAffected != 1 {
		return NewNotFoundError("user %d not found", post.UserID)
	}

	if err := s.db.Create(post).Error; err != nil {
		return errors.Wrap(err, "fail to create post")
	}
	return nil
}

// Delete removes a post together with its comments and reactions in one
// transaction, so the post never leaves orphaned children behind.
func (s *PostService) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var post model.Post
		queryResult := tx.Where("id = ?", id).First(&post)
		if queryResult.RowsAffected != 1 {
			return NewNotFoundError("post %d not found", id)
		}

		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrap(err, "fail to delete comments of post")
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Reaction{}).Error; err != nil {
			return errors.Wrap(err, "fail to delete reactions of post")
		}

		Logger.Log.Info("delete post and owned rows, post_id=", id)
		if err := tx.Delete(&post).Error; err != nil {
			return errors.Wrap(err, "fail to delete post")
		}
		return nil
	})
}
