package state_test

import (
	"postmanager/domain/entities"
	"postmanager/ui/state"
	"testing"
)

func seeded(posts ...entities.Post) state.State {
	return state.Loaded(state.New(), posts)
}

func post(id int, title, body string) entities.Post {
	return entities.Post{Id: id, UserId: 1, Title: title, Body: body}
}

func TestLoading(t *testing.T) {
	t.Run("starts loading with no posts", func(t *testing.T) {
		s := state.New()

		if !s.Loading || len(s.Posts) != 0 || s.Form.Visible {
			t.Errorf("got initial state %+v", s)
		}
	})

	t.Run("loaded replaces the collection", func(t *testing.T) {
		s := seeded(post(1, "a", "x"), post(2, "b", "y"))

		if s.Loading {
			t.Error("expected loading to finish")
		}
		assertIds(t, s.Posts, 1, 2)
	})

	t.Run("failed load keeps the collection empty", func(t *testing.T) {
		s := state.LoadFailed(state.New())

		if s.Loading {
			t.Error("expected loading to finish")
		}
		assertIds(t, s.Posts)
	})
}

func TestOpen(t *testing.T) {
	t.Run("create resets stale fields", func(t *testing.T) {
		s := state.OpenEdit(seeded(post(5, "old", "x")), post(5, "old", "x"))
		s = state.Cancel(s)

		s = state.OpenCreate(s)

		if !s.Form.Visible {
			t.Fatal("expected the form to be visible")
		}
		if _, ok := s.Form.Mode.(state.Create); !ok {
			t.Errorf("got mode %T, but want create", s.Form.Mode)
		}
		if s.Form.Draft != (entities.Draft{}) {
			t.Errorf("got draft %+v, but want it empty", s.Form.Draft)
		}
		if got := state.Title(s.Form.Mode); got != "Create Post" {
			t.Errorf("got title %q, but want %q", got, "Create Post")
		}
	})

	t.Run("edit pre-populates from the post", func(t *testing.T) {
		s := state.OpenEdit(seeded(post(5, "old", "x")), post(5, "old", "x"))

		edit, ok := s.Form.Mode.(state.Edit)
		if !ok {
			t.Fatalf("got mode %T, but want edit", s.Form.Mode)
		}
		if edit.Original.Id != 5 {
			t.Errorf("got original %+v, but want post 5", edit.Original)
		}
		if s.Form.Draft != (entities.Draft{Title: "old", Body: "x"}) {
			t.Errorf("got draft %+v", s.Form.Draft)
		}
		if got := state.Title(s.Form.Mode); got != "Edit Post" {
			t.Errorf("got title %q, but want %q", got, "Edit Post")
		}
	})

	t.Run("every opening starts a new cycle", func(t *testing.T) {
		s := state.OpenCreate(state.New())
		first := s.Form.Cycle

		s = state.OpenCreate(state.Cancel(s))

		if s.Form.Cycle != first+1 {
			t.Errorf("got cycle %d, but want %d", s.Form.Cycle, first+1)
		}
	})
}

func TestSubmit(t *testing.T) {
	t.Run("empty title issues nothing and keeps the form open", func(t *testing.T) {
		s := state.OpenCreate(seeded())

		s, req := state.Submit(s, entities.Draft{Body: "B"})

		if req != nil {
			t.Errorf("didn't expect a request, but got %+v", req)
		}
		if !s.Form.Visible || s.Form.Submitting {
			t.Errorf("got form %+v, but want it open and idle", s.Form)
		}
		if s.Form.Errors[entities.FieldTitle] != entities.ErrMissingTitleMessage {
			t.Errorf("got errors %v, but want a title message", s.Form.Errors)
		}
	})

	t.Run("create mode asks for a create", func(t *testing.T) {
		s := state.OpenCreate(seeded())

		s, req := state.Submit(s, entities.Draft{Title: "T", Body: "B"})

		want := state.CreateRequest{Cycle: s.Form.Cycle, Title: "T", Body: "B"}
		if req != want {
			t.Errorf("got request %+v, but want %+v", req, want)
		}
		if !s.Form.Submitting {
			t.Error("expected the form to be submitting")
		}
		if s.Form.Errors != nil {
			t.Errorf("didn't expect errors, but got %v", s.Form.Errors)
		}
	})

	t.Run("edit mode asks for an update of the original", func(t *testing.T) {
		original := entities.Post{Id: 5, UserId: 3, Title: "old", Body: "x"}
		s := state.OpenEdit(seeded(original), original)

		s, req := state.Submit(s, entities.Draft{Title: "new", Body: "x"})

		want := state.UpdateRequest{Cycle: s.Form.Cycle, Post: entities.Post{Id: 5, UserId: 3, Title: "new", Body: "x"}}
		if req != want {
			t.Errorf("got request %+v, but want %+v", req, want)
		}
	})

	t.Run("a second submit while in flight issues nothing", func(t *testing.T) {
		s := state.OpenCreate(seeded())
		s, _ = state.Submit(s, entities.Draft{Title: "T", Body: "B"})

		_, req := state.Submit(s, entities.Draft{Title: "T", Body: "B"})

		if req != nil {
			t.Errorf("didn't expect a request, but got %+v", req)
		}
	})

	t.Run("hidden form issues nothing", func(t *testing.T) {
		_, req := state.Submit(seeded(), entities.Draft{Title: "T", Body: "B"})

		if req != nil {
			t.Errorf("didn't expect a request, but got %+v", req)
		}
	})
}

func TestResults(t *testing.T) {
	t.Run("created appends the returned post and closes", func(t *testing.T) {
		s := state.OpenCreate(seeded(post(1, "a", "x")))
		s, _ = state.Submit(s, entities.Draft{Title: "T", Body: "B"})

		s = state.Created(s, s.Form.Cycle, post(101, "T", "B"))

		assertIds(t, s.Posts, 1, 101)
		if got := s.Posts[1]; got != post(101, "T", "B") {
			t.Errorf("got %+v, but want the created post", got)
		}
		assertClosed(t, s)
	})

	t.Run("updated replaces only the matching id", func(t *testing.T) {
		s := seeded(post(4, "four", "y"), post(5, "old", "x"), post(6, "six", "z"))
		s = state.OpenEdit(s, s.Posts[1])
		s, _ = state.Submit(s, entities.Draft{Title: "new", Body: "x"})

		s = state.Updated(s, s.Form.Cycle, 5, post(5, "new", "x"))

		assertIds(t, s.Posts, 4, 5, 6)
		if s.Posts[1].Title != "new" {
			t.Errorf("got title %q, but want %q", s.Posts[1].Title, "new")
		}
		if s.Posts[0] != post(4, "four", "y") || s.Posts[2] != post(6, "six", "z") {
			t.Errorf("other posts changed: %+v", s.Posts)
		}
		assertClosed(t, s)
	})

	t.Run("updated keeps the requested id when the response has none", func(t *testing.T) {
		s := seeded(post(5, "old", "x"))

		s = state.Updated(s, s.Form.Cycle, 5, entities.Post{Title: "new", Body: "x"})

		assertIds(t, s.Posts, 5)
	})

	t.Run("failed submit stays open", func(t *testing.T) {
		s := state.OpenCreate(seeded())
		s, _ = state.Submit(s, entities.Draft{Title: "T", Body: "B"})

		s = state.SubmitFailed(s, s.Form.Cycle)

		if !s.Form.Visible || s.Form.Submitting {
			t.Errorf("got form %+v, but want it open and idle", s.Form)
		}
		if s.Form.Draft != (entities.Draft{Title: "T", Body: "B"}) {
			t.Errorf("got draft %+v, but want the submitted values", s.Form.Draft)
		}
		assertIds(t, s.Posts)
	})

	t.Run("late result of an earlier cycle doesn't close the form", func(t *testing.T) {
		s := state.OpenCreate(seeded())
		s, _ = state.Submit(s, entities.Draft{Title: "T", Body: "B"})
		earlier := s.Form.Cycle
		s = state.OpenCreate(state.Cancel(s))

		s = state.Created(s, earlier, post(101, "T", "B"))

		assertIds(t, s.Posts, 101)
		if !s.Form.Visible {
			t.Error("expected the newer form to stay open")
		}
	})

	t.Run("deleted removes exactly the id", func(t *testing.T) {
		s := seeded(post(6, "a", "x"), post(7, "b", "y"), post(8, "c", "z"))
		s = state.MoveCursor(s, 2)

		s = state.Deleted(s, 7)

		assertIds(t, s.Posts, 6, 8)
		if s.Cursor != 1 {
			t.Errorf("got cursor %d, but want %d", s.Cursor, 1)
		}
	})

	t.Run("transitions don't touch the previous state", func(t *testing.T) {
		before := seeded(post(5, "old", "x"), post(7, "b", "y"))

		_ = state.Updated(before, 0, 5, post(5, "new", "x"))
		_ = state.Deleted(before, 7)

		assertIds(t, before.Posts, 5, 7)
		if before.Posts[0].Title != "old" {
			t.Errorf("previous state changed to %+v", before.Posts)
		}
	})
}

func TestCursor(t *testing.T) {
	s := seeded(post(1, "a", "x"), post(2, "b", "y"))

	s = state.MoveCursor(s, 5)
	if got, _ := state.Selected(s); got.Id != 2 {
		t.Errorf("got selected %+v, but want post 2", got)
	}

	s = state.MoveCursor(s, -5)
	if got, _ := state.Selected(s); got.Id != 1 {
		t.Errorf("got selected %+v, but want post 1", got)
	}

	if _, ok := state.Selected(state.New()); ok {
		t.Error("didn't expect a selection in an empty list")
	}
}

func assertIds(t testing.TB, posts []entities.Post, want ...int) {
	t.Helper()

	if len(posts) != len(want) {
		t.Fatalf("got %d posts %+v, but want ids %v", len(posts), posts, want)
	}
	for i, id := range want {
		if posts[i].Id != id {
			t.Errorf("got id %d at %d, but want %d", posts[i].Id, i, id)
		}
	}
}

func assertClosed(t testing.TB, s state.State) {
	t.Helper()

	if s.Form.Visible || s.Form.Submitting {
		t.Errorf("got form %+v, but want it closed", s.Form)
	}
}
