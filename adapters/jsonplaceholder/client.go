// Package jsonplaceholder talks to the JSONPlaceholder demo posts API.
//
// The service accepts writes but does not keep them: creates echo the post
// with a fresh id, updates echo the payload and deletes answer 200.
package jsonplaceholder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"postmanager/domain/entities"
	"postmanager/domain/services"
	"postmanager/pkg/logger"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"
	postsPath      = "/posts"
)

var _ services.PostSource = (*Client)(nil)

type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient falls back to DefaultBaseURL and http.DefaultClient when given
// zero values. No timeout is configured beyond the client's own.
func NewClient(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
	}
}

type createPayload struct {
	UserId int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (c *Client) ListPosts(ctx context.Context) ([]entities.Post, error) {
	var posts []entities.Post
	if err := c.do(ctx, http.MethodGet, postsPath, nil, &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, title, body string) (entities.Post, error) {
	payload := createPayload{
		UserId: entities.DefaultUserID,
		Title:  title,
		Body:   body,
	}

	var post entities.Post
	if err := c.do(ctx, http.MethodPost, postsPath, payload, &post); err != nil {
		return entities.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (c *Client) UpdatePost(ctx context.Context, post entities.Post) (entities.Post, error) {
	var updated entities.Post
	if err := c.do(ctx, http.MethodPut, postPath(post.Id), post, &updated); err != nil {
		return entities.Post{}, fmt.Errorf("update post %d: %w", post.Id, err)
	}
	return updated, nil
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, postPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}

func postPath(id int) string {
	return postsPath + "/" + strconv.Itoa(id)
}

// do performs one round trip. A nil out skips reading the response body.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	requestId := uuid.NewString()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("sending request", "request", requestId, "method", method, "path", path)

	res, err := c.Client.Do(req)
	if err != nil {
		logger.Debug("request failed", "request", requestId, "error", err)
		return fmt.Errorf("%w: %v", services.ErrNetwork, err)
	}
	defer res.Body.Close()

	logger.Debug("received response", "request", requestId, "status", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		io.Copy(io.Discard, res.Body)
		return &services.StatusError{Method: method, Path: path, StatusCode: res.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", services.ErrDecode, err)
	}
	return nil
}
