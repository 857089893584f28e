package main_test

import (
	"context"
	"log"
	"net/http"
	"testing"
	"time"

	"postmanager/adapters/jsonplaceholder"
	"postmanager/specifications"

	xtesting "github.com/xandalm/go-testing"
)

func TestServer(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	var (
		baseURL = "http://localhost:5000"
		client  = &http.Client{
			Timeout: 2 * time.Second,
		}
		driver = jsonplaceholder.NewClient(baseURL, client)
	)

	launcher := xtesting.NewServerLauncher(context.Background(), "", "main.go", &xtesting.HTTPServerChecker{
		BaseURL: baseURL,
		Cli:     client,
	})

	if err := launcher.StartAndWait(2 * time.Second); err != nil {
		log.Fatalf("cannot launch server, %v", err)
	}

	t.Cleanup(func() {
		if err := launcher.EndAndClean(); err != nil {
			log.Fatalf("cannot graceful end server, %v", err)
		}
	})

	posts, err := driver.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("cannot list seeded posts, %v", err)
	}
	if len(posts) != 3 {
		t.Errorf("got %d seeded posts, but want %d", len(posts), 3)
	}

	specifications.PostSourceSpecification(t, driver)
}
