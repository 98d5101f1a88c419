package ast

import "fmt"

// Node is a binary expression tree node. A node is a literal xOR an operation:
// literal nodes have no children and a meaningful Value, operation nodes have
// exactly two children and a temporary name in Result. Children are owned
// exclusively by their parent; trees are released by the garbage collector,
// there is no explicit free pass.
type Node struct {
	Op Operator

	// Result is the name this node's value is known by in emitted code.
	// Operation nodes get a temporary ("t0", "t1", ...) assigned when the
	// operator is recognized by the parser, before the right operand is
	// parsed. Literal nodes carry the literal's own textual form, so a
	// literal operand renders as its numeric value in instructions.
	Result string

	// Value is only meaningful when Op == OP_LITERAL.
	Value int64

	Left  *Node
	Right *Node
}

func NewLiteral(value int64, text string) *Node {
	return &Node{
		Op:     OP_LITERAL,
		Result: text,
		Value:  value,
	}
}

func NewOperation(op Operator, result string, left, right *Node) *Node {
	return &Node{
		Op:     op,
		Result: result,
		Left:   left,
		Right:  right,
	}
}

func (node *Node) DebugString() string {
	if node == nil {
		return "Node <nil>"
	}
	if node.Op == OP_LITERAL {
		return fmt.Sprintf("Node Literal %d", node.Value)
	}
	return fmt.Sprintf("Node %s -> %s", node.Op.DebugString(), node.Result)
}

// CountNodes walks the tree in postorder and returns the number of nodes it
// visits. Every node of a well-formed tree is visited exactly once.
func CountNodes(node *Node) int {
	if node == nil {
		return 0
	}
	return CountNodes(node.Left) + CountNodes(node.Right) + 1
}
