package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nilotpal-dev/riftdb/pkg/logger"
)

func TestNew_freshDirectory(t *testing.T) {
	dir := t.TempDir()
	s, generations, err := New(context.Background(), dir, logger.Nop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	if len(generations) != 0 {
		t.Fatalf("New() generations = %v, want empty", generations)
	}
	if s.ActiveGeneration() != 0 {
		t.Fatalf("ActiveGeneration() = %d, want 0", s.ActiveGeneration())
	}
	if s.Position() != 0 {
		t.Fatalf("Position() = %d, want 0", s.Position())
	}
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()
	s, _, err := New(context.Background(), dir, logger.Nop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	offset, err := s.Append([]byte("hello"))
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if offset != 0 {
		t.Fatalf("Append() offset = %d, want 0", offset)
	}

	offset2, err := s.Append([]byte("world!"))
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if offset2 != 5 {
		t.Fatalf("Append() offset = %d, want 5", offset2)
	}

	r, err := s.SectionReader(s.ActiveGeneration(), 0, 5)
	if err != nil {
		t.Fatalf("SectionReader() error: %v", err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("SectionReader() content = %q, want %q", b, "hello")
	}
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	s, _, err := New(context.Background(), dir, logger.Nop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	s.Append([]byte("a"))

	next, err := s.Rotate()
	if err != nil {
		t.Fatalf("Rotate() error: %v", err)
	}
	if next != 1 {
		t.Fatalf("Rotate() = %d, want 1", next)
	}
	if s.ActiveGeneration() != 1 {
		t.Fatalf("ActiveGeneration() after Rotate = %d, want 1", s.ActiveGeneration())
	}
	if s.Position() != 0 {
		t.Fatalf("Position() after Rotate = %d, want 0", s.Position())
	}

	if _, err := os.Stat(filepath.Join(dir, "data_0.data")); err != nil {
		t.Fatalf("generation 0 file missing after Rotate: %v", err)
	}
}

func TestDeleteGenerationsBelow(t *testing.T) {
	dir := t.TempDir()
	s, _, err := New(context.Background(), dir, logger.Nop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	s.Append([]byte("a"))
	s.Rotate()
	s.Append([]byte("b"))
	s.Rotate()

	if err := s.DeleteGenerationsBelow(2); err != nil {
		t.Fatalf("DeleteGenerationsBelow() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "data_0.data")); !os.IsNotExist(err) {
		t.Fatalf("generation 0 file should be deleted, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data_1.data")); !os.IsNotExist(err) {
		t.Fatalf("generation 1 file should be deleted, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data_2.data")); err != nil {
		t.Fatalf("generation 2 file should remain: %v", err)
	}
}

func TestNew_reopensExistingGenerations(t *testing.T) {
	dir := t.TempDir()
	s, _, err := New(context.Background(), dir, logger.Nop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	s.Append([]byte("a"))
	s.Rotate()
	s.Append([]byte("bb"))
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	s2, generations, err := New(context.Background(), dir, logger.Nop())
	if err != nil {
		t.Fatalf("New() reopen error: %v", err)
	}
	defer s2.Close()

	if len(generations) != 2 || generations[0] != 0 || generations[1] != 1 {
		t.Fatalf("New() reopen generations = %v, want [0 1]", generations)
	}
	if s2.ActiveGeneration() != 1 {
		t.Fatalf("ActiveGeneration() reopen = %d, want 1", s2.ActiveGeneration())
	}
	if s2.Position() != 2 {
		t.Fatalf("Position() reopen = %d, want 2", s2.Position())
	}
}
