package services

import (
	"github.com/pkg/errors"
	"github.com/socialraccoon/api/model"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) Save(comment *model.Comment) error {
	if err := s.db.Create(comment).Error; err != nil {
		return errors.Wrap(err, "fail to create comment")
	}
	return nil
}

func (s *CommentService) Update(comment *model.Comment) error {
	if err := s.db.Save(comment).Error; err != nil {
		return errors.Wrap(err, "fail to update comment")
	}
	return nil
}

func (s *CommentService) FindById(id int) (*model.Comment, error) {
	var comment model.Comment
	queryResult := s.db.Where("id = ?", id).First(&comment)
	if queryResult.RowsAffected != 1 {
		return nil, NewNotFoundError("comment %d not found", id)
	}
	return &comment, nil
}

// Delete is fetch-or-fail: the comment must resolve before the row delete
// runs, so a missing id uniformly yields NotFoundError.
func (s *CommentService) Delete(id int) (*model.Comment, error) {
	comment, err := s.FindById(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(comment).Error; err != nil {
		return nil, errors.Wrap(err, "fail to delete comment")
	}
	return comment, nil
}

// Paginated lookups below are zero-based and return only the requested
// page's rows in insertion order. No total count is exposed.

func (s *CommentService) GetCommentsByPostId(postId int, pageNumber int, pageSize int) ([]*model.Comment, error) {
	return s.pagedComments(s.db.Where("post_id = ?", postId), pageNumber, pageSize)
}

func (s *CommentService) GetCommentsByUserId(userId int, pageNumber int, pageSize int) ([]*model.Comment, error) {
	return s.pagedComments(s.db.Where("user_id = ?", userId), pageNumber, pageSize)
}

func (s *CommentService) GetCommentsByPostIdAndUserId(postId int, userId int, pageNumber int, pageSize int) ([]*model.Comment, error) {
	return s.pagedComments(s.db.Where("post_id = ? AND user_id = ?", postId, userId), pageNumber, pageSize)
}

func (s *CommentService) pagedComments(query *gorm.DB, pageNumber int, pageSize int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := query.
		Order("id").
		Offset(pageNumber * pageSize).
		Limit(pageSize).
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "fail to query comments")
	}
	return comments, nil
}
