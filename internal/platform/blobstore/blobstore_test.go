package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestPutGetRoundTrip(t *testing.T) {
	store := NewMemory(0)

	meta, err := store.Put(context.Background(), "lab_results.pdf", "application/pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Size != int64(len("pdf bytes")) {
		t.Errorf("expected size %d, got %d", len("pdf bytes"), meta.Size)
	}
	if meta.Hash == "" {
		t.Error("expected content hash")
	}

	got, r, err := store.Get(context.Background(), meta.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FileName != "lab_results.pdf" || got.ContentType != "application/pdf" {
		t.Errorf("metadata mismatch: %+v", got)
	}
	data, _ := io.ReadAll(r)
	if string(data) != "pdf bytes" {
		t.Errorf("expected stored bytes back, got %q", data)
	}
}

func TestPut_MissingName(t *testing.T) {
	store := NewMemory(0)
	_, err := store.Put(context.Background(), "", "text/plain", strings.NewReader("x"))
	if !errors.Is(err, ErrMissingFileName) {
		t.Errorf("expected ErrMissingFileName, got %v", err)
	}
}

func TestPut_TooLarge(t *testing.T) {
	store := NewMemory(4)
	_, err := store.Put(context.Background(), "big.bin", "", strings.NewReader("five!"))
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}

	// At the limit is fine.
	if _, err := store.Put(context.Background(), "ok.bin", "", strings.NewReader("four")); err != nil {
		t.Errorf("unexpected error at size limit: %v", err)
	}
}

func TestPut_DefaultsContentType(t *testing.T) {
	store := NewMemory(0)
	meta, err := store.Put(context.Background(), "raw", "", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.ContentType != "application/octet-stream" {
		t.Errorf("expected octet-stream default, got %s", meta.ContentType)
	}
}

func TestGet_NotFound(t *testing.T) {
	store := NewMemory(0)
	_, _, err := store.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := NewMemory(0)
	meta, _ := store.Put(context.Background(), "x.txt", "text/plain", strings.NewReader("x"))

	if err := store.Delete(context.Background(), meta.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Stat(context.Background(), meta.ID); !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound after delete, got %v", err)
	}
	if err := store.Delete(context.Background(), meta.ID); !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound on double delete, got %v", err)
	}
}
