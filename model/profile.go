package model

import "time"

/*

Profile is the per-user profile page

Id: primary key
UserID: owning user, exactly one profile per user
Description: free-form profile text

Images: profile pictures, "has-many" relation. A freshly created profile
always carries exactly one image row; resetting the picture overwrites the
row's urls instead of deleting it, so the relation never becomes empty.

*/

type Profile struct {
	Id          int `gorm:"primaryKey;autoIncrement" json:"idProfile"`
	CreatedAt   time.Time
	UserID      int             `gorm:"uniqueIndex" json:"idUser"`
	Description string          `json:"description"`
	Images      []*ImageProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images,omitempty"`
}
