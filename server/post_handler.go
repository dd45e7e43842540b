package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialraccoon/api/model"
	"github.com/socialraccoon/api/services"
)

type postRequest struct {
	Content string `json:"content"`
	User    *struct {
		Id int `json:"idUser"`
	} `json:"user"`
}

func (s *APIServer) createPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, services.NewValidationError("malformed post body"))
		return
	}
	if req.User == nil {
		writeError(c, services.NewValidationError("post must reference a user"))
		return
	}

	post := &model.Post{
		UserID:  req.User.Id,
		Content: req.Content,
	}
	if err := s.Posts.Save(post); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewPostDTO(post))
}

func (s *APIServer) getPost(c *gin.Context) {
	postId, err := pathId(c, "postId")
	if err != nil {
		writeError(c, err)
		return
	}
	post, err := s.Posts.FindById(postId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewPostDTO(post))
}

func (s *APIServer) getPostsByUserId(c *gin.Context) {
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

	posts, err := s.Posts.GetPostsByUserId(userId, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(posts) == 0 {
		writeError(c, services.NewNotFoundError("no posts found for the given user"))
		return
	}
	c.JSON(http.StatusOK, model.NewPostDTOs(posts))
}

func (s *APIServer) deletePost(c *gin.Context) {
	postId, err := pathId(c, "postId")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Posts.Delete(postId); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
