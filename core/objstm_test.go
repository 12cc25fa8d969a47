package core

import "testing"

func newObjStmFixture(t *testing.T) *ObjectStream {
	t.Helper()
	// Header: "10 0 11 7" means object 10 at data-offset 0, object 11 at
	// data-offset 7, relative to /First.
	header := "10 0 11 7 "
	body := "(hello)(world)"
	full := header + body

	dict := Dict{
		"Type":  Name("ObjStm"),
		"N":     Int(2),
		"First": Int(len(header)),
	}
	stream := &Stream{Dict: dict, Data: []byte(full)}

	os, err := NewObjectStream(stream)
	if err != nil {
		t.Fatalf("NewObjectStream failed: %v", err)
	}
	return os
}

func TestObjectStreamIndexOf(t *testing.T) {
	os := newObjStmFixture(t)
	if idx := os.IndexOf(10); idx != 0 {
		t.Errorf("got index %d, want 0", idx)
	}
	if idx := os.IndexOf(11); idx != 1 {
		t.Errorf("got index %d, want 1", idx)
	}
	if idx := os.IndexOf(99); idx != -1 {
		t.Errorf("got index %d, want -1", idx)
	}
}

func TestObjectStreamObjectAt(t *testing.T) {
	os := newObjStmFixture(t)
	obj, err := os.ObjectAt(0)
	if err != nil {
		t.Fatalf("ObjectAt(0) failed: %v", err)
	}
	s, ok := obj.(String)
	if !ok || string(s) != "hello" {
		t.Fatalf("got %+v, want String(hello)", obj)
	}

	obj, err = os.ObjectAt(1)
	if err != nil {
		t.Fatalf("ObjectAt(1) failed: %v", err)
	}
	s, ok = obj.(String)
	if !ok || string(s) != "world" {
		t.Fatalf("got %+v, want String(world)", obj)
	}
}

func TestObjectStreamObjectAtOutOfRange(t *testing.T) {
	os := newObjStmFixture(t)
	if _, err := os.ObjectAt(5); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}

func TestNewObjectStreamRejectsWrongType(t *testing.T) {
	stream := &Stream{Dict: Dict{"Type": Name("XRef")}, Data: []byte{}}
	if _, err := NewObjectStream(stream); err == nil {
		t.Fatal("expected error for non-ObjStm stream")
	}
}
