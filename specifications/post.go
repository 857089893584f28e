package specifications

import (
	"context"
	"postmanager/domain/entities"
	"testing"
)

// PostSource is the driver every posts backend is checked through.
type PostSource interface {
	ListPosts(ctx context.Context) ([]entities.Post, error)
	CreatePost(ctx context.Context, title, body string) (entities.Post, error)
	UpdatePost(ctx context.Context, post entities.Post) (entities.Post, error)
	DeletePost(ctx context.Context, id int) error
}

// PostSourceSpecification runs every post specification against a backend
// that persists writes.
func PostSourceSpecification(t *testing.T, driver PostSource) {
	t.Run("creating a post", func(t *testing.T) { CreatingAPostSpecification(t, driver) })
	t.Run("updating a post", func(t *testing.T) { UpdatingAPostSpecification(t, driver) })
	t.Run("deleting a post", func(t *testing.T) { DeletingAPostSpecification(t, driver) })
}

func CreatingAPostSpecification(t testing.TB, driver PostSource) {
	ctx := context.Background()

	got, err := driver.CreatePost(ctx, "Test Post", "Some body")
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	want := entities.Post{Id: got.Id, UserId: entities.DefaultUserID, Title: "Test Post", Body: "Some body"}
	assertPostsAreTheSame(t, got, want)
	if got.Id == 0 {
		t.Fatalf("didn't get an assigned id")
	}

	posts, err := driver.ListPosts(ctx)
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	listed, ok := findPost(posts, got.Id)
	if !ok {
		t.Fatalf("didn't find post %d in %v", got.Id, posts)
	}
	assertPostsAreTheSame(t, listed, want)
}

func UpdatingAPostSpecification(t testing.TB, driver PostSource) {
	ctx := context.Background()

	created, err := driver.CreatePost(ctx, "old", "x")
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}

	edited := created
	edited.Title = "new"
	got, err := driver.UpdatePost(ctx, edited)
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	assertPostsAreTheSame(t, got, edited)

	posts, err := driver.ListPosts(ctx)
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	listed, _ := findPost(posts, created.Id)
	assertPostsAreTheSame(t, listed, edited)
}

func DeletingAPostSpecification(t testing.TB, driver PostSource) {
	ctx := context.Background()

	kept, err := driver.CreatePost(ctx, "kept", "x")
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	removed, err := driver.CreatePost(ctx, "removed", "x")
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}

	if err := driver.DeletePost(ctx, removed.Id); err != nil {
		t.Fatalf("failed specification test, %v", err)
	}

	posts, err := driver.ListPosts(ctx)
	if err != nil {
		t.Fatalf("failed specification test, %v", err)
	}
	if _, ok := findPost(posts, removed.Id); ok {
		t.Errorf("post %d is still listed", removed.Id)
	}
	if _, ok := findPost(posts, kept.Id); !ok {
		t.Errorf("post %d went missing", kept.Id)
	}
}

func findPost(posts []entities.Post, id int) (entities.Post, bool) {
	for _, p := range posts {
		if p.Id == id {
			return p, true
		}
	}
	return entities.Post{}, false
}

func assertPostsAreTheSame(t testing.TB, got, want entities.Post) {
	t.Helper()

	if got != want {
		t.Fatalf("got post %+v, but want %+v", got, want)
	}
}
