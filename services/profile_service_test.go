package services

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/socialraccoon/api/utils"
	"github.com/stretchr/testify/require"
)

func TestGetProfileByUserId(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewProfileService(db)

	user := utils.TestCreateUser(t, db, "profiled")

	profile, err := svc.GetProfileByUserId(user.Id)
	require.NoError(t, err)
	require.Equal(t, user.Profile.Id, profile.Id)
	require.Equal(t, 1, len(profile.Images))

	_, err = svc.GetProfileByUserId(9999)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestProfileUpdateKeepsImages(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := NewProfileService(db)

	user := utils.TestCreateUser(t, db, "updated")
	profile := *user.Profile
	profile.Description = "new description"
	require.NoError(t, svc.Update(&profile))

	reloaded, err := svc.FindById(user.Profile.Id)
	require.NoError(t, err)
	require.Equal(t, "new description", reloaded.Description)
	require.Equal(t, 1, len(reloaded.Images))
}
