package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/socialraccoon/api/model"
	"github.com/socialraccoon/api/services"
)

func (s *APIServer) listUsers(c *gin.Context) {
	users, err := s.Users.FindAll()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewUserDTOs(users))
}

func (s *APIServer) getUser(c *gin.Context) {
	userId, err := pathId(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}
	user, err := s.Users.FindById(userId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewUserDTO(user))
}

// createUser accepts either a plain JSON user, or a multipart form with a
// "user" JSON field plus an optional "image" file used as the initial
// profile picture. Without an upload the profile starts on the placeholder.
func (s *APIServer) createUser(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		s.createUserMultipart(c)
		return
	}

	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		writeError(c, services.NewValidationError("malformed user body"))
		return
	}
	if err := s.Users.Save(&user); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewUserDTO(&user))
}

func (s *APIServer) createUserMultipart(c *gin.Context) {
	var user model.User
	if err := json.Unmarshal([]byte(c.PostForm("user")), &user); err != nil {
		writeError(c, services.NewValidationError("malformed user form field"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No upload attached, fall back to the placeholder image.
		if err := s.Users.Save(&user); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, model.NewUserDTO(&user))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, services.NewValidationError("unreadable image upload"))
		return
	}
	defer file.Close()

	if err := s.Users.SaveWithImage(&user, file, fileHeader.Filename); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewUserDTO(&user))
}

func (s *APIServer) updateUser(c *gin.Context) {
	userId, err := pathId(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}

	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		writeError(c, services.NewValidationError("malformed user body"))
		return
	}
	user.Id = userId
	if err := s.Users.Update(&user); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewUserDTO(&user))
}

func (s *APIServer) deleteUser(c *gin.Context) {
	userId, err := pathId(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Users.DeleteUser(userId); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *APIServer) deleteProfileImage(c *gin.Context) {
	userId, err := pathId(c, "userId")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Users.DeleteProfileImage(userId); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
