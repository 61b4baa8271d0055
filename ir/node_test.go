package ir

import (
	"testing"
)

func mkTree() *Node {
	return FromSlice([]*Node{
		FromAtom("a"),
		FromComment("; c"),
		FromBlank(2),
		FromSlice([]*Node{
			FromAtom("b").WithComment(FromComment("; att")),
		}),
	})
}

func TestFromSliceBacklinks(t *testing.T) {
	n := mkTree()
	for i, c := range n.Values {
		if c.Parent != n {
			t.Errorf("child %d: wrong parent", i)
		}
		if c.ParentIndex != i {
			t.Errorf("child %d: ParentIndex %d", i, c.ParentIndex)
		}
	}
	inner := n.Values[3].Values[0]
	if inner.Root() != n {
		t.Error("Root did not reach the top")
	}
}

func TestClone(t *testing.T) {
	n := mkTree()
	c := n.Clone()

	c.Values[0].Text = "changed"
	c.Values[3].Values[0].Comment.Text = "; changed"
	if n.Values[0].Text != "a" {
		t.Error("clone shares atom with original")
	}
	if n.Values[3].Values[0].Comment.Text != "; att" {
		t.Error("clone shares attached comment with original")
	}
	if c.Values[1].Parent != c {
		t.Error("clone children must point at the clone")
	}
}

func TestVisit(t *testing.T) {
	n := mkTree()
	pre, post := 0, 0
	err := n.Visit(func(v *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// Attached comments are not visited: the tree has 6 nodes.
	if pre != 6 || post != 6 {
		t.Errorf("got pre=%d post=%d, want 6/6", pre, post)
	}

	pre = 0
	n.Visit(func(v *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return false, nil
	})
	if pre != 1 {
		t.Errorf("skipping children: got pre=%d, want 1", pre)
	}
}

func TestLeaves(t *testing.T) {
	leaves := Leaves(mkTree())
	want := []string{"a", "; c", "", "b", "; att"}
	if len(leaves) != len(want) {
		t.Fatalf("got %d leaves, want %d", len(leaves), len(want))
	}
	for i, w := range want {
		if leaves[i].Text != w {
			t.Errorf("leaf %d: got %q, want %q", i, leaves[i].Text, w)
		}
	}
	if leaves[2].Type != BlankType || leaves[2].Blanks != 2 {
		t.Errorf("leaf 2: got %v/%d, want Blank/2", leaves[2].Type, leaves[2].Blanks)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("round trip of %v gave %v", typ, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Nope")); err == nil {
		t.Error("expected error for unknown type name")
	}
}
