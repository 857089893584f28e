package tui

import (
	"context"

	"postmanager/domain/entities"
	"postmanager/domain/services"
	"postmanager/ui/state"

	tea "github.com/charmbracelet/bubbletea"
)

type postsLoadedMsg struct {
	posts []entities.Post
}

type postsLoadFailedMsg struct {
	err error
}

type postCreatedMsg struct {
	cycle int
	post  entities.Post
}

type postUpdatedMsg struct {
	cycle int
	id    int
	post  entities.Post
}

type submitFailedMsg struct {
	cycle int
	err   error
}

type postDeletedMsg struct {
	id int
}

type deleteFailedMsg struct {
	id  int
	err error
}

// Requests are never cancelled once started.

func loadPosts(source services.PostSource) tea.Cmd {
	return func() tea.Msg {
		posts, err := source.ListPosts(context.Background())
		if err != nil {
			return postsLoadFailedMsg{err: err}
		}
		return postsLoadedMsg{posts: posts}
	}
}

func sendRequest(source services.PostSource, req state.Request) tea.Cmd {
	switch req := req.(type) {
	case state.CreateRequest:
		return func() tea.Msg {
			post, err := source.CreatePost(context.Background(), req.Title, req.Body)
			if err != nil {
				return submitFailedMsg{cycle: req.Cycle, err: err}
			}
			return postCreatedMsg{cycle: req.Cycle, post: post}
		}
	case state.UpdateRequest:
		return func() tea.Msg {
			post, err := source.UpdatePost(context.Background(), req.Post)
			if err != nil {
				return submitFailedMsg{cycle: req.Cycle, err: err}
			}
			return postUpdatedMsg{cycle: req.Cycle, id: req.Post.Id, post: post}
		}
	}
	return nil
}

func deletePost(source services.PostSource, id int) tea.Cmd {
	return func() tea.Msg {
		if err := source.DeletePost(context.Background(), id); err != nil {
			return deleteFailedMsg{id: id, err: err}
		}
		return postDeletedMsg{id: id}
	}
}
