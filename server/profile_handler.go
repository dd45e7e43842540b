package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialraccoon/api/model"
	"github.com/socialraccoon/api/services"
)

func (s *APIServer) getProfileByUserId(c *gin.Context) {
	userId, err := pathId(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}
	profile, err := s.Profiles.GetProfileByUserId(userId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewProfileDTO(profile))
}

func (s *APIServer) updateProfile(c *gin.Context) {
	profileId, err := pathId(c, "profileId")
	if err != nil {
		writeError(c, err)
		return
	}

	var profile model.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		writeError(c, services.NewValidationError("malformed profile body"))
		return
	}
	profile.Id = profileId
	if err := s.Profiles.Update(&profile); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewProfileDTO(&profile))
}
