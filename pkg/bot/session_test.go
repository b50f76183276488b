package bot

import (
	"sync"
	"testing"
)

func TestSessionStore(t *testing.T) {
	s := NewSessionStore()

	if _, ok := s.Group(1); ok {
		t.Errorf("expected no group for a fresh chat")
	}

	s.SetGroup(1, "https://example.com/o1.html")
	s.SetGroup(2, "https://example.com/o2.html")

	if url, ok := s.Group(1); !ok || url != "https://example.com/o1.html" {
		t.Errorf("unexpected group for chat 1: %q, %v", url, ok)
	}

	// Re-selecting replaces the previous choice
	s.SetGroup(1, "https://example.com/o3.html")
	if url, _ := s.Group(1); url != "https://example.com/o3.html" {
		t.Errorf("expected the new selection, got %q", url)
	}
}

func TestSessionStoreConcurrent(t *testing.T) {
	s := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.SetGroup(id, "https://example.com/o1.html")
			s.Group(id)
		}(int64(i))
	}
	wg.Wait()
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEBHOOK_URL", "https://bot.example.com")
	t.Setenv("PORT", "")
	t.Setenv("ITEMS_PER_PAGE", "8")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.PageSize != 8 {
		t.Errorf("expected page size 8, got %d", cfg.PageSize)
	}

	t.Setenv("BOT_TOKEN", "")
	if _, err := ConfigFromEnv(); err == nil {
		t.Errorf("expected an error without BOT_TOKEN")
	}
}
