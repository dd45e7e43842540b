package model

import (
	"time"

	"github.com/jinzhu/copier"
)

// DTOs are the wire shapes returned to clients. They carry flattened scalar
// ids instead of nested entities, and copier fills them by field name from
// the corresponding entity.

type CommentDTO struct {
	Id      int       `json:"idComment"`
	UserID  int       `json:"idUser"`
	PostID  int       `json:"idPost"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

type ImageProfileDTO struct {
	Id                int    `json:"idImage"`
	ProfileID         int    `json:"idProfile"`
	ImageUrl          string `json:"imageUrl"`
	ImageThumbnailUrl string `json:"imageThumbnailUrl"`
}

type ProfileDTO struct {
	Id          int               `json:"idProfile"`
	UserID      int               `json:"idUser"`
	Description string            `json:"description"`
	Images      []ImageProfileDTO `json:"images"`
}

type UserDTO struct {
	Id      int         `json:"idUser"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Profile *ProfileDTO `json:"profile,omitempty"`
}

type PostDTO struct {
	Id        int       `json:"idPost"`
	UserID    int       `json:"idUser"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReactionDTO struct {
	UserID int `json:"idUser"`
	PostID int `json:"idPost"`
}

func NewCommentDTO(c *Comment) *CommentDTO {
	dto := &CommentDTO{}
	copier.Copy(dto, c)
	return dto
}

func NewCommentDTOs(comments []*Comment) []*CommentDTO {
	dtos := []*CommentDTO{}
	for _, c := range comments {
		dtos = append(dtos, NewCommentDTO(c))
	}
	return dtos
}

func NewImageProfileDTO(i *ImageProfile) *ImageProfileDTO {
	dto := &ImageProfileDTO{}
	copier.Copy(dto, i)
	return dto
}

func NewProfileDTO(p *Profile) *ProfileDTO {
	dto := &ProfileDTO{}
	copier.Copy(dto, p)
	return dto
}

func NewUserDTO(u *User) *UserDTO {
	dto := &UserDTO{}
	copier.Copy(dto, u)
	return dto
}

func NewUserDTOs(users []*User) []*UserDTO {
	dtos := []*UserDTO{}
	for _, u := range users {
		dtos = append(dtos, NewUserDTO(u))
	}
	return dtos
}

func NewPostDTO(p *Post) *PostDTO {
	dto := &PostDTO{}
	copier.Copy(dto, p)
	return dto
}

func NewPostDTOs(posts []*Post) []*PostDTO {
	dtos := []*PostDTO{}
	for _, p := range posts {
		dtos = append(dtos, NewPostDTO(p))
	}
	return dtos
}

func NewReactionDTO(r *Reaction) *ReactionDTO {
	dto := &ReactionDTO{}
	copier.Copy(dto, r)
	return dto
}

func NewReactionDTOs(reactions []*Reaction) []*ReactionDTO {
	dtos := []*ReactionDTO{}
	for _, r := range reactions {
		dtos = append(dtos, NewReactionDTO(r))
	}
	return dtos
}
