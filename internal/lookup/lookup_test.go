package lookup

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestNoLocationReportsNotFound(t *testing.T) {
	_, err := NoLocation{}.Country(context.Background(), "10.0.0.1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenGeoIPMissingDatabase(t *testing.T) {
	if _, err := OpenGeoIP(filepath.Join(t.TempDir(), "missing.mmdb")); err == nil {
		t.Fatal("expected error opening missing database")
	}
}

func TestDNSReverseHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewDNS().Reverse(ctx, "192.0.2.1"); err == nil {
		t.Fatal("expected error with cancelled context")
	}
}
