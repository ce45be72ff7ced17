package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/resonanse/resonanse_api/config"
)

// Companion server for the prebuilt web app. Any path that does not
// match a file falls back to the entry document so client-side
// routing keeps working.
func main() {
	cfg := config.New()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.StaticPort),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		Handler:      spaHandler(cfg.StaticDir),
	}

	log.Printf("Static server running on port %v, serving %s ...", cfg.StaticPort, cfg.StaticDir)
	log.Fatal(server.ListenAndServe())
}

func spaHandler(root string) http.Handler {
	fileServer := http.FileServer(http.Dir(root))
	index := filepath.Join(root, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(root, filepath.Clean(r.URL.Path))

		info, err := os.Stat(path)
		if err != nil || info.IsDir() && r.URL.Path != "/" {
			http.ServeFile(w, r, index)
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}
