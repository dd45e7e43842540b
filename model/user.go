package model

import "time"

/*

User is an account holder

Id: primary key
CreatedAt: time when entity is created
Name: display name
Email: unique login email

Profile: the user's single profile, "has-one" relation. Every persisted user
owns exactly one profile, created together with the user.
Posts: posts authored by this user, "has-many" relation
Reactions: reactions authored by this user, "has-many" relation. The foreign
key deliberately carries no delete cascade: the store rejects deleting a user
who still has reactions, so UserService must remove them first.

*/

type User struct {
	Id        int `gorm:"primaryKey;autoIncrement" json:"idUser"`
	CreatedAt time.Time
	Name      string      `json:"name"`
	Email     string      `gorm:"uniqueIndex" json:"email"`
	Profile   *Profile    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"profile,omitempty"`
	Posts     []*Post     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"posts,omitempty"`
	Reactions []*Reaction `gorm:"constraint:OnUpdate:CASCADE;" json:"reactions,omitempty"`
}
