// Package state holds the posts screen as a single value. Every transition
// takes the current State and returns the next one; none of them mutate
// the slices of the State they were given.
package state

import (
	"postmanager/domain/entities"
)

// Mode is the action the form performs on submit: Create or Edit.
type Mode interface {
	title() string
}

type Create struct{}

func (Create) title() string { return "Create Post" }

// Edit carries the post being edited; its id is the target of the update.
type Edit struct {
	Original entities.Post
}

func (Edit) title() string { return "Edit Post" }

// Title is the heading of the dialog for the given mode.
func Title(m Mode) string {
	if m == nil {
		return ""
	}
	return m.title()
}

type Form struct {
	Visible bool
	Mode    Mode
	// Cycle counts openings of the form. Results of a submit only close
	// the form when they belong to the cycle still on screen.
	Cycle      int
	Draft      entities.Draft
	Errors     entities.FieldErrors
	Submitting bool
}

type State struct {
	Posts   []entities.Post
	Loading bool
	Cursor  int
	Form    Form
}

// Request is a write the form asks to send: CreateRequest or UpdateRequest.
type Request interface {
	cycle() int
}

type CreateRequest struct {
	Cycle int
	Title string
	Body  string
}

func (r CreateRequest) cycle() int { return r.Cycle }

type UpdateRequest struct {
	Cycle int
	Post  entities.Post
}

func (r UpdateRequest) cycle() int { return r.Cycle }

func New() State {
	return State{Loading: true}
}

func Loaded(s State, posts []entities.Post) State {
	s.Loading = false
	s.Posts = append([]entities.Post(nil), posts...)
	s.Cursor = clamp(s.Cursor, len(s.Posts))
	return s
}

// LoadFailed leaves the collection as it was.
func LoadFailed(s State) State {
	s.Loading = false
	return s
}

func MoveCursor(s State, delta int) State {
	s.Cursor = clamp(s.Cursor+delta, len(s.Posts))
	return s
}

// Selected returns the post under the cursor.
func Selected(s State) (entities.Post, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Posts) {
		return entities.Post{}, false
	}
	return s.Posts[s.Cursor], true
}

func OpenCreate(s State) State {
	return open(s, Create{}, entities.Draft{})
}

func OpenEdit(s State, post entities.Post) State {
	return open(s, Edit{Original: post}, entities.DraftOf(post))
}

func open(s State, mode Mode, draft entities.Draft) State {
	s.Form = Form{
		Visible: true,
		Mode:    mode,
		Cycle:   s.Form.Cycle + 1,
		Draft:   draft,
	}
	return s
}

func Cancel(s State) State {
	s.Form.Visible = false
	s.Form.Submitting = false
	s.Form.Errors = nil
	return s
}

// Submit validates draft and, when valid, returns the request to send.
// The request is nil when the draft is invalid, the form is hidden, or a
// submit of this cycle is still in flight.
func Submit(s State, draft entities.Draft) (State, Request) {
	if !s.Form.Visible || s.Form.Submitting {
		return s, nil
	}

	s.Form.Draft = draft
	s.Form.Errors = draft.Validate()
	if s.Form.Errors != nil {
		return s, nil
	}

	s.Form.Submitting = true
	switch mode := s.Form.Mode.(type) {
	case Edit:
		post := mode.Original
		post.Title = draft.Title
		post.Body = draft.Body
		return s, UpdateRequest{Cycle: s.Form.Cycle, Post: post}
	default:
		return s, CreateRequest{Cycle: s.Form.Cycle, Title: draft.Title, Body: draft.Body}
	}
}

// Created appends the post the server returned.
func Created(s State, cycle int, post entities.Post) State {
	posts := make([]entities.Post, 0, len(s.Posts)+1)
	posts = append(posts, s.Posts...)
	s.Posts = append(posts, post)
	return settle(s, cycle, true)
}

// Updated replaces every post with the given id by post. A response
// without an id keeps the requested one.
func Updated(s State, cycle, id int, post entities.Post) State {
	if post.Id == 0 {
		post.Id = id
	}
	posts := make([]entities.Post, len(s.Posts))
	for i, p := range s.Posts {
		if p.Id == id {
			posts[i] = post
		} else {
			posts[i] = p
		}
	}
	s.Posts = posts
	return settle(s, cycle, true)
}

// SubmitFailed keeps the form open so the user can try again.
func SubmitFailed(s State, cycle int) State {
	return settle(s, cycle, false)
}

func Deleted(s State, id int) State {
	posts := make([]entities.Post, 0, len(s.Posts))
	for _, p := range s.Posts {
		if p.Id != id {
			posts = append(posts, p)
		}
	}
	s.Posts = posts
	s.Cursor = clamp(s.Cursor, len(s.Posts))
	return s
}

func settle(s State, cycle int, done bool) State {
	if cycle != s.Form.Cycle {
		return s
	}
	s.Form.Submitting = false
	if done {
		s.Form.Visible = false
	}
	return s
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
