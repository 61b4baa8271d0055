package ir

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	Values      []*Node

	// Text is the verbatim source text of an AtomType or CommentType node,
	// including the leading ';' of a comment.
	Text string

	// Blanks is the number of blank lines a BlankType node stands for,
	// beyond the single line break that separates adjacent terms.
	Blanks int

	// Comment is a comment sharing the node's last source line: for a
	// ListType node, one appearing after the closing parenthesis; for an
	// AtomType node, one following the atom before any line break.
	Comment *Node
}

func FromAtom(text string) *Node {
	return &Node{Type: AtomType, Text: text}
}

func FromComment(text string) *Node {
	return &Node{Type: CommentType, Text: text}
}

func FromBlank(n int) *Node {
	return &Node{Type: BlankType, Blanks: n}
}

func FromSlice(children []*Node) *Node {
	res := &Node{
		Type: ListType,
	}
	res.Values = make([]*Node, len(children))
	for i, c := range children {
		res.Values[i] = c
		c.Parent = res
		c.ParentIndex = i
	}
	return res
}

// WithComment attaches a trailing same-line comment and returns the node.
func (n *Node) WithComment(c *Node) *Node {
	if c != nil {
		c.Parent = n
	}
	n.Comment = c
	return n
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.Type = n.Type
	dst.Text = n.Text
	dst.Blanks = n.Blanks
	dst.Values = make([]*Node, len(n.Values))
	for i, c := range n.Values {
		dstI := &Node{}
		c.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	if n.Comment != nil {
		dstComment := &Node{}
		n.Comment.CloneTo(dstComment)
		dstComment.Parent = dst
		dst.Comment = dstComment
	}
	return dst
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the tree pre- and post-order. f is called with isPost false
// before descending and true after; returning false from the pre call skips
// the node's children. Attached comments are not visited.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Values {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Leaves returns the atom, comment, and blank nodes of the subtree in source
// order, attached comments included. Two documents with equal Leaves carry
// the same content.
func Leaves(node *Node) []*Node {
	var res []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Type.IsLeaf() {
			res = append(res, n)
		}
		for _, c := range n.Values {
			walk(c)
		}
		if n.Comment != nil {
			res = append(res, n.Comment)
		}
	}
	walk(node)
	return res
}
