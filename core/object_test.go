package core

import "testing"

func TestDictAccessors(t *testing.T) {
	d := Dict{
		"Type":  Name("Page"),
		"Count": Int(7),
		"Kids":  Array{Int(1), Int(2)},
		"Res":   Dict{"Font": Name("F1")},
		"Root":  Ref{Num: 3, Gen: 0},
	}

	if !d.Has("Type") {
		t.Error("expected Has(Type) to be true")
	}
	if d.Has("Missing") {
		t.Error("expected Has(Missing) to be false")
	}

	name, ok := d.GetName("Type")
	if !ok || name != "Page" {
		t.Errorf("got %q, ok=%v", name, ok)
	}
	count, ok := d.GetInt("Count")
	if !ok || count != 7 {
		t.Errorf("got %d, ok=%v", count, ok)
	}
	arr, ok := d.GetArray("Kids")
	if !ok || len(arr) != 2 {
		t.Errorf("got %+v, ok=%v", arr, ok)
	}
	sub, ok := d.GetDict("Res")
	if !ok || sub.Get("Font") == nil {
		t.Errorf("got %+v, ok=%v", sub, ok)
	}
	ref, ok := d.GetRef("Root")
	if !ok || ref.Num != 3 {
		t.Errorf("got %+v, ok=%v", ref, ok)
	}

	if _, ok := d.GetName("Count"); ok {
		t.Error("expected GetName(Count) to fail: wrong type")
	}
}

func TestDictGetMissingKeyReturnsNil(t *testing.T) {
	d := Dict{}
	if d.Get("absent") != nil {
		t.Error("expected nil for missing key")
	}
}

func TestArrayGetBounds(t *testing.T) {
	a := Array{Int(1), Int(2)}
	if a.Get(0) == nil {
		t.Error("expected element at index 0")
	}
	if a.Get(-1) != nil {
		t.Error("expected nil for negative index")
	}
	if a.Get(5) != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestRefAsMapKey(t *testing.T) {
	m := map[Ref]string{
		{Num: 1, Gen: 0}: "first",
		{Num: 1, Gen: 1}: "second",
	}
	if m[Ref{Num: 1, Gen: 0}] != "first" {
		t.Error("ref map lookup failed for gen 0")
	}
	if m[Ref{Num: 1, Gen: 1}] != "second" {
		t.Error("ref map lookup failed for gen 1")
	}
}

func TestRefString(t *testing.T) {
	r := Ref{Num: 5, Gen: 2}
	if r.String() != "5 2 R" {
		t.Errorf("got %q, want %q", r.String(), "5 2 R")
	}
}

func TestObjectTypeString(t *testing.T) {
	cases := []struct {
		obj  Object
		want ObjectType
	}{
		{Null{}, ObjNull},
		{Bool(true), ObjBool},
		{Int(1), ObjInt},
		{Real(1.5), ObjReal},
		{String("x"), ObjString},
		{Name("x"), ObjName},
		{Array{}, ObjArray},
		{Dict{}, ObjDict},
		{Ref{}, ObjRef},
	}
	for _, c := range cases {
		if c.obj.Type() != c.want {
			t.Errorf("%T: got %v, want %v", c.obj, c.obj.Type(), c.want)
		}
	}
}
