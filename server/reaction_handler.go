package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialraccoon/api/model"
	"github.com/socialraccoon/api/services"
)

func (s *APIServer) createReaction(c *gin.Context) {
	postId, err := pathId(c, "postId")
	if err != nil {
		writeError(c, err)
		return
	}
	userId, err := pathId(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}

	reaction, err := s.Reactions.React(userId, postId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewReactionDTO(reaction))
}

func (s *APIServer) deleteReaction(c *gin.Context) {
	postId, err := pathId(c, "postId")
	if err != nil {
		writeError(c, err)
		return
	}
	userId, err := pathId(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.Reactions.Delete(userId, postId); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *APIServer) getReactionsByPostId(c *gin.Context) {
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

	reactions, err := s.Reactions.GetReactionsByPostId(postId, page, pageSize)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(reactions) == 0 {
		writeError(c, services.NewNotFoundError("no reactions found for the given post"))
		return
	}
	c.JSON(http.StatusOK, model.NewReactionDTOs(reactions))
}
