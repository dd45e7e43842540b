package model

// DefaultProfileImageUrl is assigned to a profile image when the user never
// uploaded a picture, or after the picture is reset.
const DefaultProfileImageUrl = "/uploads/default-profile.png"

type ImageProfile struct {
	Id                int    `gorm:"primaryKey;autoIncrement" json:"idImage"`
	ProfileID         int    `gorm:"index" json:"idProfile"`
	ImageUrl          string `json:"imageUrl"`
	ImageThumbnailUrl string `json:"imageThumbnailUrl"`
}

// IsDefault reports whether the image still points at the placeholder.
func (i *ImageProfile) IsDefault() bool {
	return i.ImageUrl == DefaultProfileImageUrl
}
