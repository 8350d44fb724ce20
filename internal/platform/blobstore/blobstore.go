// Package blobstore is the file-storage collaborator for patient documents.
// It hands out opaque references; the rest of the system never inspects file
// contents. The in-memory implementation matches the volatile session model
// of the rest of the store.
package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBlobNotFound    = errors.New("blob not found")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrMissingFileName = errors.New("file name is required")
)

// Metadata describes a stored blob.
type Metadata struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Hash        string    `json:"hash"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store is the storage collaborator contract.
type Store interface {
	Put(ctx context.Context, name, contentType string, r io.Reader) (*Metadata, error)
	Get(ctx context.Context, id uuid.UUID) (*Metadata, io.Reader, error)
	Stat(ctx context.Context, id uuid.UUID) (*Metadata, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blob struct {
	meta Metadata
	data []byte
}

// Memory is an in-memory Store.
type Memory struct {
	mu      sync.RWMutex
	blobs   map[uuid.UUID]*blob
	maxSize int64
}

// NewMemory creates an in-memory store. maxSize <= 0 disables the size limit.
func NewMemory(maxSize int64) *Memory {
	return &Memory{blobs: make(map[uuid.UUID]*blob), maxSize: maxSize}
}

func (m *Memory) Put(_ context.Context, name, contentType string, r io.Reader) (*Metadata, error) {
	if name == "" {
		return nil, ErrMissingFileName
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var data []byte
	var err error
	if m.maxSize > 0 {
		data, err = io.ReadAll(io.LimitReader(r, m.maxSize+1))
		if err == nil && int64(len(data)) > m.maxSize {
			err = ErrFileTooLarge
		}
	} else {
		data, err = io.ReadAll(r)
	}
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	meta := Metadata{
		ID:          uuid.New(),
		FileName:    name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Hash:        hex.EncodeToString(sum[:]),
		CreatedAt:   time.Now(),
	}

	m.mu.Lock()
	m.blobs[meta.ID] = &blob{meta: meta, data: data}
	m.mu.Unlock()

	out := meta
	return &out, nil
}

func (m *Memory) Get(_ context.Context, id uuid.UUID) (*Metadata, io.Reader, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blobs[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrBlobNotFound, id)
	}
	meta := b.meta
	return &meta, bytes.NewReader(b.data), nil
}

func (m *Memory) Stat(_ context.Context, id uuid.UUID) (*Metadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, id)
	}
	meta := b.meta
	return &meta, nil
}

func (m *Memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[id]; !ok {
		return fmt.Errorf("%w: %s", ErrBlobNotFound, id)
	}
	delete(m.blobs, id)
	return nil
}
