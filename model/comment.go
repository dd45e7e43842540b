package model

import "time"

/*

Comment is free text a user leaves on a post

Id: primary key
UserID: author, "belongs-to" relation
PostID: commented post, "belongs-to" relation
Comment: the text itself
Date: time the comment was written (client supplied on update)

UserID and PostID are immutable after creation, only Comment and Date may be
rewritten.

*/

type Comment struct {
	Id      int       `gorm:"primaryKey;autoIncrement" json:"idComment"`
	UserID  int       `gorm:"index" json:"idUser"`
	PostID  int       `gorm:"index" json:"idPost"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}
