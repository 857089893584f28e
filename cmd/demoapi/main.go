// Command demoapi serves a local stand-in for the JSONPlaceholder posts API.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"postmanager/adapters/httpserver"
	"postmanager/domain/entities"
	"postmanager/domain/services/memory"
	"postmanager/pkg/logger"
)

var seed = []entities.Post{
	{Id: 1, UserId: 1, Title: "sunt aut facere repellat provident", Body: "quia et suscipit\nsuscipit recusandae consequuntur expedita"},
	{Id: 2, UserId: 1, Title: "qui est esse", Body: "est rerum tempore vitae\nsequi sint nihil reprehenderit dolor beatae"},
	{Id: 3, UserId: 1, Title: "ea molestias quasi exercitationem", Body: "et iusto sed quo iure\nvoluptatem occaecati omnis eligendi"},
}

func main() {
	addr := flag.String("addr", ":5000", "HTTP network address")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger.SetOutput(os.Stdout, level)

	server := httpserver.NewServer(memory.NewStorage(seed...))
	srv := &http.Server{
		Addr:         *addr,
		Handler:      server,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("starting demo API", "addr", *addr, "posts", len(seed))
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("demo API stopped", "error", err)
		os.Exit(1)
	}
}
