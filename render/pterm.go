package render

import (
	"io"

	"github.com/Sammany1/CFG-Parser/derive"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

type leveledNode struct {
	node  derive.Node
	level int
}

// TreeNode converts a tree to a pterm tree node. The root of the tree
// becomes the single child of the (unlabeled) node returned, children keep
// their order.
func TreeNode(t *derive.Tree) pterm.TreeNode {
	root, ok := t.Root()
	if !ok {
		return pterm.TreeNode{}
	}
	var list pterm.LeveledList
	stack := arraystack.New()
	stack.Push(leveledNode{node: root})
	for !stack.Empty() {
		v, _ := stack.Pop()
		ln := v.(leveledNode)
		list = append(list, pterm.LeveledListItem{Level: ln.level, Text: ln.node.Label})
		children := t.Children(ln.node.ID)
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(leveledNode{node: children[i], level: ln.level + 1})
		}
	}
	return putils.TreeFromLeveledList(list)
}

// PrintTree renders a tree to w.
func PrintTree(w io.Writer, t *derive.Tree) error {
	return pterm.DefaultTree.WithRoot(TreeNode(t)).WithWriter(w).Render()
}

// TreeString renders a tree to a string.
func TreeString(t *derive.Tree) (string, error) {
	return pterm.DefaultTree.WithRoot(TreeNode(t)).Srender()
}
