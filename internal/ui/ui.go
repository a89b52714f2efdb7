// Package ui serves the inline HTML/JS interface document.
//
// The document ships embedded in the binary. When UI_DIR points at a
// directory containing an index.html, that file is served instead and
// hot-reloaded on change, so the markup can be edited without a restart.
package ui

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofiber/fiber/v2"
)

//go:embed index.html
var embeddedDocument []byte

// Service holds the interface document currently being served
type Service struct {
	mu       sync.RWMutex
	document []byte
	watcher  *fsnotify.Watcher
}

// NewService creates the UI service. With an empty dir the embedded
// document is served; otherwise dir/index.html is loaded and watched.
func NewService(dir string) (*Service, error) {
	s := &Service{document: embeddedDocument}

	if dir == "" {
		return s, nil
	}

	path := filepath.Join(dir, "index.html")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read UI document %s: %w", path, err)
	}
	s.document = data

	go s.watch(path)

	return s, nil
}

// Handler serves the interface document for any non-API GET path
func (s *Service) Handler(c *fiber.Ctx) error {
	s.mu.RLock()
	document := s.document
	s.mu.RUnlock()

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(document)
}

// Close stops the file watcher if one is running
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// watch reloads the document when the file changes.
// Watches the directory containing the file (more reliable than watching
// the file directly).
func (s *Service) watch(path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("⚠️  Failed to create UI file watcher: %v", err)
		return
	}

	s.mu.Lock()
	s.watcher = watcher
	s.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Printf("⚠️  Failed to get absolute path for %s: %v", path, err)
		watcher.Close()
		return
	}

	dir := filepath.Dir(absPath)
	filename := filepath.Base(absPath)

	if err := watcher.Add(dir); err != nil {
		log.Printf("⚠️  Failed to watch directory %s: %v", dir, err)
		watcher.Close()
		return
	}

	log.Printf("👁️  Watching %s for changes (hot-reload enabled)", path)

	// Debounce to avoid multiple reloads for rapid file changes
	var debounceTimer *time.Timer
	debounceDuration := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}

				debounceTimer = time.AfterFunc(debounceDuration, func() {
					data, err := os.ReadFile(absPath)
					if err != nil {
						log.Printf("❌ Failed to reload UI document: %v", err)
						return
					}

					s.mu.Lock()
					s.document = data
					s.mu.Unlock()

					log.Printf("🔄 UI document reloaded from %s", path)
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("⚠️  UI file watcher error: %v", err)
		}
	}
}
