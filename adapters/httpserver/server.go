package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"postmanager/domain/entities"
	"postmanager/domain/services"
	"postmanager/pkg/logger"

	router "github.com/xandalm/go-router"
)

type Error struct {
	Message string `json:"message,omitempty"`
}

func NewError(message string) *Error {
	return &Error{
		Message: message,
	}
}

const (
	ErrPostNotFoundMessage      = "there is no such post here"
	ErrUnsupportedPostMessage   = "unsupported data to parse into post"
	ErrMissingPostFieldsMessage = "missing post fields (title and body are required)"
	ErrTimeoutMessage           = "request took too long"
)

// Server answers the demo posts API: bare JSON posts under /posts.
type Server struct {
	storage services.Storage
	router  *router.Router
	to      time.Duration
}

func NewServer(storage services.Storage) *Server {
	s := &Server{
		storage: storage,
		router:  &router.Router{},
		to:      time.Minute,
	}

	s.router.GetFunc("/posts/{id}", s.getPostHandler)
	s.router.PutFunc("/posts/{id}", s.editPostHandler)
	s.router.DeleteFunc("/posts/{id}", s.deletePostHandler)
	s.router.GetFunc("/posts", s.getPostHandler)
	s.router.PostFunc("/posts", s.storePostHandler)

	return s
}

func (s *Server) SetTimeout(duration time.Duration) error {
	if duration < time.Second {
		return errors.New("timeout duration must be greater than 1s")
	}
	s.to = duration
	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.TimeoutHandler(s.router, s.to, ErrTimeoutMessage).ServeHTTP(w, r)
}

func (s *Server) storePostHandler(w router.ResponseWriter, r *router.Request) {
	var post entities.Post
	if err := r.ParseBodyInto(&post); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		toJSON(w, NewError(ErrUnsupportedPostMessage))
		return
	}

	if post.Title == "" || post.Body == "" {
		w.WriteHeader(http.StatusBadRequest)
		toJSON(w, NewError(ErrMissingPostFieldsMessage))
		return
	}

	if err := s.storage.StorePost(&post); err != nil {
		logger.Error("failed to store post", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger.Info("post created", "id", post.Id, "title", post.Title)
	w.WriteHeader(http.StatusCreated)
	toJSON(w, post)
}

func (s *Server) getPostHandler(w router.ResponseWriter, r *router.Request) {
	param := r.Params()["id"]

	if param == "" {
		w.WriteHeader(http.StatusOK)
		toJSON(w, s.storage.GetPosts())
		return
	}

	id, ok := parseId(param)
	if !ok {
		writeNotFound(w)
		return
	}

	foundPost := s.storage.GetPost(id)
	if foundPost == nil {
		writeNotFound(w)
		return
	}

	w.WriteHeader(http.StatusOK)
	toJSON(w, *foundPost)
}

func (s *Server) editPostHandler(w router.ResponseWriter, r *router.Request) {
	id, ok := parseId(r.Params()["id"])
	if !ok {
		writeNotFound(w)
		return
	}

	var post entities.Post
	if err := r.ParseBodyInto(&post); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		toJSON(w, NewError(ErrUnsupportedPostMessage))
		return
	}
	post.Id = id

	if err := s.storage.EditPost(&post); err != nil {
		if s.storage.GetPost(id) == nil {
			writeNotFound(w)
			return
		}
		logger.Error("failed to edit post", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger.Info("post updated", "id", post.Id, "title", post.Title)
	w.WriteHeader(http.StatusOK)
	toJSON(w, post)
}

func (s *Server) deletePostHandler(w router.ResponseWriter, r *router.Request) {
	id, ok := parseId(r.Params()["id"])
	if !ok || s.storage.GetPost(id) == nil {
		writeNotFound(w)
		return
	}

	if err := s.storage.DeletePost(id); err != nil {
		logger.Error("failed to delete post", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger.Info("post deleted", "id", id)
	w.WriteHeader(http.StatusOK)
	toJSON(w, struct{}{})
}

func parseId(param string) (int, bool) {
	id, err := strconv.Atoi(param)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeNotFound(w router.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	toJSON(w, NewError(ErrPostNotFoundMessage))
}

func toJSON(w io.Writer, s any) error {
	return json.NewEncoder(w).Encode(s)
}
