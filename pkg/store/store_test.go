package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	base string
}

func (c testConfig) BasePath() string    { return c.base }
func (c testConfig) LexiconPath() string { return "" }
func (c testConfig) IconBase() string    { return "" }
func (c testConfig) IconExt() string     { return "png" }
func (c testConfig) TextSize() float64   { return 11 }

func TestTextSizeRoundTrip(t *testing.T) {
	p, err := Load(testConfig{base: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, ok := p.TextSize(); ok {
		t.Fatalf("expected no stored preference yet")
	}
	if err := p.SetTextSize(13.5); err != nil {
		t.Fatalf("set: %v", err)
	}
	size, ok := p.TextSize()
	if !ok || size != 13.5 {
		t.Fatalf("got %v ok=%v", size, ok)
	}
}

func TestSetTextSizeRejectsNonPositive(t *testing.T) {
	p, err := Load(testConfig{base: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.SetTextSize(0); err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestSamplesSeededAndSaved(t *testing.T) {
	p, err := Load(testConfig{base: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	names := p.SampleNames()
	if len(names) < 2 {
		t.Fatalf("expected seeded samples, got %v", names)
	}

	text, err := p.Sample("groceries")
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if text == "" {
		t.Fatalf("expected seeded grocery sample text")
	}

	if err := p.SaveSample("mine", "# Mine\n- thing"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := p.Sample("mine")
	if err != nil || got != "# Mine\n- thing" {
		t.Fatalf("round trip: %q err=%v", got, err)
	}
}

func TestSampleMissing(t *testing.T) {
	p, err := Load(testConfig{base: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := p.Sample("nope"); err == nil {
		t.Fatalf("expected error for missing sample")
	}
}

func TestWatchFileDebounces(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "list.md")
	if err := os.WriteFile(target, []byte("- a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := WatchFile(ctx, target, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// A burst of writes should coalesce into a single notification.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("- b\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a change notification")
	}

	select {
	case <-changes:
		t.Fatalf("burst should have coalesced into one notification")
	case <-time.After(200 * time.Millisecond):
	}
}
