package model

import "time"

/*

Post is a piece of user generated content

Id: primary key
CreatedAt: time when entity is created
UserID: author, "belongs-to" relation

Content: post's content in plain text
Comments: comments left on this post, "has-many" relation
Reactions: reactions left on this post, "has-many" relation

*/

type Post struct {
	Id        int `gorm:"primaryKey;autoIncrement" json:"idPost"`
	CreatedAt time.Time
	UserID    int         `gorm:"index" json:"idUser"`
	Content   string      `json:"content"`
	Comments  []*Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments,omitempty"`
	Reactions []*Reaction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reactions,omitempty"`
}
