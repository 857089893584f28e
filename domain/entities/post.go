package entities

import "strings"

// DefaultUserID is the owner assigned to posts created from this client.
const DefaultUserID = 1

type Post struct {
	Id     int    `json:"id"`
	UserId int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func NewPost(id, userId int, title, body string) *Post {
	return &Post{
		Id:     id,
		UserId: userId,
		Title:  title,
		Body:   body,
	}
}

const (
	FieldTitle = "title"
	FieldBody  = "body"

	ErrMissingTitleMessage = "Please enter a title"
	ErrMissingBodyMessage  = "Please enter the post body"
)

// Draft holds the editable fields of a post while it is in the form.
type Draft struct {
	Title string
	Body  string
}

func DraftOf(post Post) Draft {
	return Draft{Title: post.Title, Body: post.Body}
}

// FieldErrors maps a field name to the message shown under it.
type FieldErrors map[string]string

// Validate returns nil when every required field has content.
func (d Draft) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.Title) == "" {
		errs[FieldTitle] = ErrMissingTitleMessage
	}
	if strings.TrimSpace(d.Body) == "" {
		errs[FieldBody] = ErrMissingBodyMessage
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
