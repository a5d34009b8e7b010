package adf

import "errors"

// SkipChildren can be returned by a WalkFunc to skip the children of the
// current node without stopping the walk.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node visited by Walk. depth is 0 for the node
// Walk was called with.
type WalkFunc func(n Node, depth int) error

// Walk visits n and its descendants in document order, parents before
// children. It stops at the first error returned by fn other than SkipChildren.
func Walk(n Node, fn WalkFunc) error {
	return walk(n, 0, fn)
}

func walk(n Node, depth int, fn WalkFunc) error {
	if err := fn(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, child := range Children(n) {
		if err := walk(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Children returns the content of n, or nil for nodes without content.
// The returned slice is the node's own; callers must not modify it.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Doc:
		return n.Content
	case *Blockquote:
		return n.Content
	case *BulletList:
		return n.Content
	case *CodeBlock:
		if n.Content == nil {
			return nil
		}
		return *n.Content
	case *Expand:
		return n.Content
	case *Heading:
		return n.Content
	case *ListItem:
		return n.Content
	case *MediaGroup:
		return n.Content
	case *MediaSingle:
		return n.Content
	case *NestedExpand:
		return n.Content
	case *OrderedList:
		return n.Content
	case *Panel:
		return n.Content
	case *Paragraph:
		return n.Content
	case *Table:
		return n.Content
	case *TableCell:
		return n.Content
	case *TableHeader:
		return n.Content
	case *TableRow:
		return n.Content
	case *TaskList:
		return n.Content
	case *TaskItem:
		return n.Content
	case *DecisionList:
		return n.Content
	case *DecisionItem:
		return n.Content
	case *LayoutSection:
		return n.Content
	case *LayoutColumn:
		return n.Content
	}
	return nil
}

// Marks returns the marks of n, or nil for nodes that cannot carry marks.
func Marks(n Node) []Mark {
	switch n := n.(type) {
	case *Text:
		return n.Marks
	case *Expand:
		return n.Marks
	}
	return nil
}
