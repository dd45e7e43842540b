package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/socialraccoon/api/services"
	Logger "github.com/socialraccoon/api/utils/log"
)

const defaultPageSize = 10

// APIServer wires the REST surface to the domain services. One instance is
// created at startup with all services constructor-injected.
type APIServer struct {
	Users     *services.UserService
	Profiles  *services.ProfileService
	Posts     *services.PostService
	Comments  *services.CommentService
	Reactions *services.ReactionService
}

// RegisterRoutes attaches every route group to the given router.
func (s *APIServer) RegisterRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	users := router.Group("/users")
	{
		users.GET("", s.listUsers)
		users.POST("", s.createUser)
		users.GET("/:userId", s.getUser)
		users.PUT("/:userId", s.updateUser)
		users.DELETE("/:userId", s.deleteUser)
		users.DELETE("/:userId/profile-image", s.deleteProfileImage)
	}

	profiles := router.Group("/profiles")
	{
		profiles.GET("/user/:userId", s.getProfileByUserId)
		profiles.PUT("/:profileId", s.updateProfile)
	}

	posts := router.Group("/posts")
	{
		posts.POST("", s.createPost)
		posts.GET("/:postId", s.getPost)
		posts.GET("/user/:userId", s.getPostsByUserId)
		posts.DELETE("/:postId", s.deletePost)
	}

	comments := router.Group("/comments")
	{
		comments.POST("/post/:postId", s.createComment)
		comments.GET("/post/:postId", s.getCommentsByPostId)
		comments.GET("/user/:userId", s.getCommentsByUserId)
		comments.PUT("/:commentId", s.updateComment)
		comments.DELETE("/:commentId", s.deleteComment)
	}

	reactions := router.Group("/reactions")
	{
		reactions.POST("/post/:postId/user/:userId", s.createReaction)
		reactions.DELETE("/post/:postId/user/:userId", s.deleteReaction)
		reactions.GET("/post/:postId", s.getReactionsByPostId)
	}
}

// writeError translates typed service failures into status codes without
// leaking internals. Unknown errors are logged and reported as 500.
func writeError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError
	var storage *services.StorageError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Message})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"message": validation.Message})
	case errors.As(err, &storage):
		Logger.Log.Error("storage failure: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": storage.Message})
	default:
		Logger.Log.Error("unhandled error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

// pathId parses an integer path parameter, e.g. :userId.
func pathId(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, services.NewValidationError("%s must be an integer", name)
	}
	return id, nil
}

// pathIdFromString parses an integer carried in a query param.
func pathIdFromString(value string, name string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, services.NewValidationError("%s must be an integer", name)
	}
	return id, nil
}

// pagination reads the zero-based "page" and "pageSize" query params with
// the conventional defaults.
func pagination(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return 0, 0, services.NewValidationError("page must be a non-negative integer")
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize <= 0 {
		return 0, 0, services.NewValidationError("pageSize must be a positive integer")
	}
	return page, pageSize, nil
}
