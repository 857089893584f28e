package services

import (
	"context"
	"errors"
	"fmt"

	"postmanager/domain/entities"
)

// PostSource is the remote posts collection the UI works against.
type PostSource interface {
	ListPosts(ctx context.Context) ([]entities.Post, error)
	CreatePost(ctx context.Context, title, body string) (entities.Post, error)
	UpdatePost(ctx context.Context, post entities.Post) (entities.Post, error)
	DeletePost(ctx context.Context, id int) error
}

var (
	ErrNetwork = errors.New("source: network failure")
	ErrServer  = errors.New("source: unexpected response status")
	ErrDecode  = errors.New("source: undecodable response")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %s %s returned %d", ErrServer, e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrServer
}
