package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/socialraccoon/api/model"
	"github.com/socialraccoon/api/services"
)

// commentRequest is the create/update body. On create the embedded user
// reference is required; on update only comment and date are read, parent
// associations are immutable.
type commentRequest struct {
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
	User    *struct {
		Id int `json:"idUser"`
	} `json:"user"`
}

func (s *APIServer) createComment(c *gin.Context) {
	postId, err := pathId(c, "postId")
	if err != nil {
		writeError(c, err)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, services.NewValidationError("malformed comment body"))
		return
	}
	if req.User == nil {
		writeError(c, services.NewValidationError("comment must reference a user"))
		return
	}

	user, err := s.Users.FindById(req.User.Id)
	if err != nil {
		writeError(c, err)
		return
	}
	post, err := s.Posts.FindById(postId)
	if err != nil {
		writeError(c, err)
		return
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	comment := &model.Comment{
		UserID:  user.Id,
		PostID:  post.Id,
		Comment: req.Comment,
		Date:    date,
	}
	if err := s.Comments.Save(comment); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewCommentDTO(comment))
}

func (s *APIServer) updateComment(c *gin.Context) {
	commentId, err := pathId(c, "commentId")
	if err != nil {
		writeError(c, err)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, services.NewValidationError("malformed comment body"))
		return
	}

	comment, err := s.Comments.FindById(commentId)
	if err != nil {
		writeError(c, err)
		return
	}

	comment.Comment = req.Comment
	if !req.Date.IsZero() {
		comment.Date = req.Date
	}
	if err := s.Comments.Update(comment); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewCommentDTO(comment))
}

func (s *APIServer) deleteComment(c *gin.Context) {
	commentId, err := pathId(c, "commentId")
	if err != nil {
		writeError(c, err)
		return
	}
	if _, err := s.Comments.Delete(commentId); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *APIServer) getCommentsByPostId(c *gin.Context) {
	postId, err := pathId(c, "postId")
	if err != nil {
		writeError(c, err)
		return
	}
	page, pageSize, err := pagination(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var comments []*model.Comment
	if userIdParam := c.Query("userId"); userIdParam != "" {
		userId, convErr := pathIdFromString(userIdParam, "userId")
		if convErr != nil {
			writeError(c, convErr)
			return
		}
		comments, err = s.Comments.GetCommentsByPostIdAndUserId(postId, userId, page, pageSize)
	} else {
		comments, err = s.Comments.GetCommentsByPostId(postId, page, pageSize)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	// An empty page is reported as not found, matching the list endpoints'
	// documented product decision.
	if len(comments) == 0 {
		writeError(c, services.NewNotFoundError("no comments found for the given criteria"))
		return
	}
	c.JSON(http.StatusOK, model.NewCommentDTOs(comments))
}

func (s *APIServer) getCommentsByUserId(c *gin.Context) {
	userId, err := pathId(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}
	page, pageSize, err := pagination(c)
	if err != nil {
		writeError(c, err)
		return
	}

	comments, err := s.Comments.GetCommentsByUserId(userId, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(comments) == 0 {
		writeError(c, services.NewNotFoundError("no comments found for the given user"))
		return
	}
	c.JSON(http.StatusOK, model.NewCommentDTOs(comments))
}
