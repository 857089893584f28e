package services

import "postmanager/domain/entities"

// Storage backs the demo posts API.
type Storage interface {
	GetPost(id int) *entities.Post
	GetPosts() []entities.Post
	StorePost(post *entities.Post) error
	EditPost(post *entities.Post) error
	DeletePost(id int) error
}
