package ui

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestServiceServesEmbeddedDocument(t *testing.T) {
	svc, err := NewService("")
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	defer svc.Close()

	app := fiber.New()
	app.Get("/*", svc.Handler)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %s", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response: %v", err)
	}
	if !strings.Contains(string(body), "MemoMate") {
		t.Error("Expected interface document in response")
	}
	for _, fragment := range []string{"filterMemories", "memoryCount", "getTimeAgo"} {
		if !strings.Contains(string(body), fragment) {
			t.Errorf("Expected interface document to include %s", fragment)
		}
	}
}

func TestServiceServesOverrideDocument(t *testing.T) {
	dir := t.TempDir()
	custom := "<!DOCTYPE html><html><body>custom</body></html>"
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(custom), 0644); err != nil {
		t.Fatalf("Failed to write override: %v", err)
	}

	svc, err := NewService(dir)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	defer svc.Close()

	app := fiber.New()
	app.Get("/*", svc.Handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != custom {
		t.Errorf("Expected override document, got %s", body)
	}
}

func TestServiceMissingOverride(t *testing.T) {
	if _, err := NewService(t.TempDir()); err == nil {
		t.Error("Expected error when UI_DIR has no index.html")
	}
}
