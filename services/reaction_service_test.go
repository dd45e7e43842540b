package services

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/socialraccoon/api/model"
	"github.com/socialraccoon/api/utils"
	"github.com/stretchr/testify/require"
)

func TestReactionKeyEquality(t *testing.T) {
	a := model.Reaction{UserID: 1, PostID: 2}
	b := model.Reaction{UserID: 1, PostID: 2}
	c := model.Reaction{UserID: 2, PostID: 1}

	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), c.Key())

	// Keys are plain values, usable as map keys.
	seen := map[model.ReactionKey]bool{a.Key(): true}
	require.True(t, seen[b.Key()])
	require.False(t, seen[c.Key()])
}

func TestReactDuplicateRejected(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewReactionService(db)

	user := utils.TestCreateUser(t, db, "fan")
	post := utils.TestCreatePost(t, db, user.Id, "post")

	reaction, err := svc.React(user.Id, post.Id)
	require.NoError(t, err)
	require.Equal(t, model.ReactionKey{UserID: user.Id, PostID: post.Id}, reaction.Key())

	_, err = svc.React(user.Id, post.Id)
	var validation *ValidationError
	require.True(t, errors.As(err, &validation))

	var count int64
	db.Model(&model.Reaction{}).Count(&count)
	require.Equal(t, int64(1), count)
}

func TestReactUnknownUserOrPost(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewReactionService(db)

	user := utils.TestCreateUser(t, db, "fan")
	post := utils.TestCreatePost(t, db, user.Id, "post")

	var notFound *NotFoundError
	_, err := svc.React(9999, post.Id)
	require.True(t, errors.As(err, &notFound))
	_, err = svc.React(user.Id, 9999)
	require.True(t, errors.As(err, &notFound))
}

func TestReactionDelete(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewReactionService(db)

	user := utils.TestCreateUser(t, db, "fan")
	post := utils.TestCreatePost(t, db, user.Id, "post")
	utils.TestCreateReaction(t, db, user.Id, post.Id)

	require.NoError(t, svc.Delete(user.Id, post.Id))

	err := svc.Delete(user.Id, post.Id)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestReactionsByPostIdAndCount(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewReactionService(db)

	post := utils.TestCreatePost(t, db, utils.TestCreateUser(t, db, "author").Id, "post")
	for i := 0; i < 3; i++ {
		fan := utils.TestCreateUser(t, db, "fan")
		utils.TestCreateReaction(t, db, fan.Id, post.Id)
	}

	reactions, err := svc.GetReactionsByPostId(post.Id, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, len(reactions))

	count, err := svc.CountByPostId(post.Id)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}
