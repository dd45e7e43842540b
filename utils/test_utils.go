package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/socialraccoon/api/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Fixture helpers writing directly through gorm, shared by service and
// handler tests. Each helper does sanity checks and returns the created row.

// TestCreateUser creates a user with a profile and the default profile
// image, the exact shape UserService.Save produces.
func TestCreateUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{
		Name:  name,
		Email: fmt.Sprintf("%s_%s@example.com", name, RandomAlphabetString(6)),
		Profile: &model.Profile{
			Description: "test profile",
			Images: []*model.ImageProfile{{
				ImageUrl:          model.DefaultProfileImageUrl,
				ImageThumbnailUrl: model.DefaultProfileImageUrl,
			}},
		},
	}
	require.NoError(t, db.Create(user).Error)
	require.NotZero(t, user.Id)
	require.NotZero(t, user.Profile.Id)
	require.Equal(t, 1, len(user.Profile.Images))
	return user
}

func TestCreatePost(t *testing.T, db *gorm.DB, userId int, content string) *model.Post {
	t.Helper()
	post := &model.Post{UserID: userId, Content: content}
	require.NoError(t, db.Create(post).Error)
	require.NotZero(t, post.Id)
	return post
}

func TestCreateComment(t *testing.T, db *gorm.DB, userId int, postId int, text string) *model.Comment {
	t.Helper()
	comment := &model.Comment{
		UserID:  userId,
		PostID:  postId,
		Comment: text,
		Date:    time.Now(),
	}
	require.NoError(t, db.Create(comment).Error)
	require.NotZero(t, comment.Id)
	return comment
}

func TestCreateReaction(t *testing.T, db *gorm.DB, userId int, postId int) *model.Reaction {
	t.Helper()
	reaction := &model.Reaction{UserID: userId, PostID: postId}
	require.NoError(t, db.Create(reaction).Error)
	return reaction
}
