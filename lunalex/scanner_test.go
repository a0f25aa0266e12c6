package lunalex

import (
	"testing"

	"github.com/lunalang/lex/token"
)

func TestScanner_NextPeekBackup(t *testing.T) {
	s := NewScanner(NewStringSource("aéb"), token.EntryStack{})
	s.StartToken()

	if r := s.Peek(); r != 'a' {
		t.Fatalf("Peek = %q, want 'a'", r)
	}
	if r := s.Next(); r != 'a' {
		t.Fatalf("Next = %q, want 'a'", r)
	}
	if r := s.Next(); r != 'é' {
		t.Fatalf("Next = %q, want 'é'", r)
	}
	s.Backup()
	if r := s.Peek(); r != 'é' {
		t.Fatalf("Peek after Backup = %q, want 'é'", r)
	}
	if r := s.Next(); r != 'é' {
		t.Fatalf("Next = %q, want 'é'", r)
	}
	if r := s.Next(); r != 'b' {
		t.Fatalf("Next = %q, want 'b'", r)
	}
	if r := s.Next(); r != EOF {
		t.Fatalf("Next at end = %q, want EOF", r)
	}
	if r := s.Peek(); r != EOF {
		t.Fatalf("Peek at end = %q, want EOF", r)
	}
}

func TestScanner_BackupPastTokenStartPanics(t *testing.T) {
	s := NewScanner(NewStringSource("ab"), token.EntryStack{})
	s.StartToken()
	s.Next()

	defer func() {
		if recover() == nil {
			t.Fatal("Backup past token start did not panic")
		}
	}()
	s.Backup()
	s.Backup()
}

func TestScanner_MarkReset(t *testing.T) {
	s := NewScanner(NewStringSource("abcdef"), token.EntryStack{})
	s.StartToken()
	s.Next()
	s.Next()
	mark := s.Mark()
	s.Next()
	s.Next()
	if got := s.Current(); got != "abcd" {
		t.Fatalf("Current = %q, want %q", got, "abcd")
	}
	s.Reset(mark)
	if got := s.Current(); got != "ab" {
		t.Fatalf("Current after Reset = %q, want %q", got, "ab")
	}
	if r := s.Peek(); r != 'c' {
		t.Fatalf("Peek after Reset = %q, want 'c'", r)
	}
}

func TestScanner_CompactPreservesPosition(t *testing.T) {
	s := NewScanner(NewStringSource("hello world"), token.EntryStack{})
	for i := 0; i < 6; i++ {
		s.StartToken()
		s.Next()
	}
	if got := s.Pos(); got != 6 {
		t.Fatalf("Pos = %d, want 6", got)
	}
	if r := s.Peek(); r != 'w' {
		t.Fatalf("Peek = %q, want 'w'", r)
	}
}
