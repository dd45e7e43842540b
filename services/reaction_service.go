package services

import (
	"github.com/pkg/errors"
	"github.com/socialraccoon/api/model"
	Logger "github.com/socialraccoon/api/utils/log"
	"gorm.io/gorm"
)

type ReactionService struct {
	db *gorm.DB
}

func NewReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{db: db}
}

// React records a reaction of a user on a post. Uniqueness of the
// (user, post) pair is enforced by the composite primary key, not by any
// application level lock: a concurrent duplicate insert fails on the
// constraint and is reported as ValidationError.
func (s *ReactionService) React(userId int, postId int) (*model.Reaction, error) {
	var user model.User
	if queryResult := s.db.Where("id = ?", userId).First(&user); queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("user %d not found", userId)
	}
	var post model.Post
	if queryResult := s.db.Where("id = ?", postId).First(&post); queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("post %d not found", postId)
	}

	reaction := &model.Reaction{UserID: userId, PostID: postId}
	if err := s.db.Create(reaction).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, NewValidationError("user %d already reacted to post %d", userId, postId)
		}
		return nil, errors.Wrap(err, "fail to create reaction")
	}
	return reaction, nil
}

func (s *ReactionService) Delete(userId int, postId int) error {
	queryResult := s.db.Where("user_id = ? AND post_id = ?", userId, postId).Delete(&model.Reaction{})
	if queryResult.Error != nil {
		return errors.Wrap(queryResult.Error, "fail to delete reaction")
	}
	if queryResult.RowsAffected != 1 {
		return NewNotFoundError("reaction of user %d on post %d not found", userId, postId)
	}
	return nil
}

// DeleteByUserIdTx removes every reaction authored by the user inside the
// caller's transaction. UserService runs this before deleting the user row.
func (s *ReactionService) DeleteByUserIdTx(tx *gorm.DB, userId int) error {
	queryResult := tx.Where("user_id = ?", userId).Delete(&model.Reaction{})
	if queryResult.Error != nil {
		return errors.Wrap(queryResult.Error, "fail to delete reactions of user")
	}
	Logger.Log.Info("deleted reactions of user, user_id=", userId, " rows=", queryResult.RowsAffected)
	return nil
}

func (s *ReactionService) GetReactionsByPostId(postId int, pageNumber int, pageSize int) ([]*model.Reaction, error) {
	var reactions []*model.Reaction
	err := s.db.
		Where("post_id = ?", postId).
		Order("user_id").
		Offset(pageNumber * pageSize).
		Limit(pageSize).
		Find(&reactions).Error
	if err != nil {
		return nil, errors.Wrap(err, "fail to query reactions by post")
	}
	return reactions, nil
}

func (s *ReactionService) CountByPostId(postId int) (int64, error) {
	var count int64
	if err := s.db.Model(&model.Reaction{}).Where("post_id = ?", postId).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "fail to count reactions")
	}
	return count, nil
}
