package services

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/socialraccoon/api/model"
	"github.com/socialraccoon/api/utils"
	"github.com/stretchr/testify/require"
)

func TestPostSaveRequiresUser(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewPostService(db)

	err := svc.Save(&model.Post{UserID: 9999, Content: "orphan"})
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))

	user := utils.TestCreateUser(t, db, "poster")
	post := &model.Post{UserID: user.Id, Content: "hello"}
	require.NoError(t, svc.Save(post))
	require.NotZero(t, post.Id)
}

func TestPostDeleteCascades(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewPostService(db)

	user := utils.TestCreateUser(t, db, "poster")
	post := utils.TestCreatePost(t, db, user.Id, "doomed")
	utils.TestCreateComment(t, db, user.Id, post.Id, "comment")
	utils.TestCreateReaction(t, db, user.Id, post.Id)

	require.NoError(t, svc.Delete(post.Id))

	var comments, reactions int64
	db.Model(&model.Comment{}).Where("post_id = ?", post.Id).Count(&comments)
	db.Model(&model.Reaction{}).Where("post_id = ?", post.Id).Count(&reactions)
	require.Equal(t, int64(0), comments)
	require.Equal(t, int64(0), reactions)

	_, err := svc.FindById(post.Id)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestGetPostsByUserIdPagination(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewPostService(db)

	user := utils.TestCreateUser(t, db, "prolific")
	for i := 0; i < 5; i++ {
		utils.TestCreatePost(t, db, user.Id, "post")
	}

	page0, err := svc.GetPostsByUserId(user.Id, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 3, len(page0))

	page1, err := svc.GetPostsByUserId(user.Id, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, len(page1))
}
