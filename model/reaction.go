package model

import "time"

/*

Reaction is a "user reacts to post" relation

UserID: user id, part of the composite primary key
PostID: post id, part of the composite primary key
CreatedAt: time when relation is created

The composite primary key guarantees at most one reaction per (user, post)
pair at the store level; a duplicate insert fails on the constraint.

*/

type Reaction struct {
	UserID    int `gorm:"primaryKey" json:"idUser"`
	PostID    int `gorm:"primaryKey" json:"idPost"`
	CreatedAt time.Time
}

// ReactionKey is the value identity of a reaction. Two keys are equal iff
// their scalar ids are equal, regardless of which entity objects they came
// from, so the type is safe to use as a map key.
type ReactionKey struct {
	UserID int
	PostID int
}

func (r *Reaction) Key() ReactionKey {
	return ReactionKey{UserID: r.UserID, PostID: r.PostID}
}
