package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/socialraccoon/api/file_store"
	"github.com/socialraccoon/api/model"
	"github.com/socialraccoon/api/services"
	"github.com/socialraccoon/api/utils"
	"github.com/socialraccoon/api/utils/dotenv"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// prepareTestServer wires a router over the given db exactly like main does,
// with a fake image store.
func prepareTestServer(db *gorm.DB) *gin.Engine {
	reactions := services.NewReactionService(db)
	images := services.NewImageProfileService(db)
	apiServer := &APIServer{
		Users:     services.NewUserService(db, reactions, images, &file_store.FakeFileStore{}),
		Profiles:  services.NewProfileService(db),
		Posts:     services.NewPostService(db),
		Comments:  services.NewCommentService(db),
		Reactions: reactions,
	}
	router := gin.New()
	apiServer.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method string, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateComment(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := prepareTestServer(db)

	user := utils.TestCreateUser(t, db, "commenter")
	post := utils.TestCreatePost(t, db, user.Id, "post")

	t.Run("missing user reference is 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/comments/post/%d", post.Id),
			gin.H{"comment": "anonymous"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/comments/post/%d", post.Id),
			gin.H{"comment": "ghost", "user": gin.H{"idUser": 9999}})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown post is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/comments/post/9999",
			gin.H{"comment": "nowhere", "user": gin.H{"idUser": user.Id}})
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("valid comment is 201 with DTO", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/comments/post/%d", post.Id),
			gin.H{"comment": "first!", "user": gin.H{"idUser": user.Id}})
		require.Equal(t, http.StatusCreated, w.Code)

		var dto model.CommentDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		require.NotZero(t, dto.Id)
		require.Equal(t, user.Id, dto.UserID)
		require.Equal(t, post.Id, dto.PostID)
		require.Equal(t, "first!", dto.Comment)
		require.False(t, dto.Date.IsZero())
	})
}

func TestUpdateComment(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := prepareTestServer(db)

	user := utils.TestCreateUser(t, db, "editor")
	post := utils.TestCreatePost(t, db, user.Id, "post")
	comment := utils.TestCreateComment(t, db, user.Id, post.Id, "tpyo")

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/comments/%d", comment.Id),
		gin.H{"comment": "typo"})
	require.Equal(t, http.StatusOK, w.Code)

	var dto model.CommentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	require.Equal(t, comment.Id, dto.Id)
	require.Equal(t, "typo", dto.Comment)
	// Parents are immutable through update.
	require.Equal(t, user.Id, dto.UserID)
	require.Equal(t, post.Id, dto.PostID)

	w = doJSON(t, router, http.MethodPut, "/comments/9999", gin.H{"comment": "nothing"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteComment(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := prepareTestServer(db)

	user := utils.TestCreateUser(t, db, "remover")
	post := utils.TestCreatePost(t, db, user.Id, "post")
	comment := utils.TestCreateComment(t, db, user.Id, post.Id, "bye")

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/comments/%d", comment.Id), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/comments/%d", comment.Id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCommentsByPostId(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := prepareTestServer(db)

	alice := utils.TestCreateUser(t, db, "alice")
	bob := utils.TestCreateUser(t, db, "bob")
	post := utils.TestCreatePost(t, db, alice.Id, "post")
	for i := 0; i < 12; i++ {
		utils.TestCreateComment(t, db, alice.Id, post.Id, fmt.Sprintf("alice %d", i))
	}
	utils.TestCreateComment(t, db, bob.Id, post.Id, "bob 0")

	t.Run("first page", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/comments/post/%d?page=0&pageSize=10", post.Id), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var dtos []model.CommentDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dtos))
		require.Equal(t, 10, len(dtos))
		require.Equal(t, "alice 0", dtos[0].Comment)
	})

	t.Run("user filter narrows by both", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/comments/post/%d?page=0&pageSize=10&userId=%d", post.Id, bob.Id), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var dtos []model.CommentDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dtos))
		require.Equal(t, 1, len(dtos))
		require.Equal(t, "bob 0", dtos[0].Comment)
	})

	t.Run("empty page is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/comments/post/%d?page=5&pageSize=10", post.Id), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("by user id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/comments/user/%d?page=0&pageSize=5", alice.Id), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var dtos []model.CommentDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dtos))
		require.Equal(t, 5, len(dtos))
	})
}
