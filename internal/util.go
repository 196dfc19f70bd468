package internal

import "golang.org/x/exp/slices"

// ReconstructPath walks parent links back from current until a state
// without a parent, then reverses the walk so it reads root first.
func ReconstructPath[NodeType comparable](
	parentOf func(NodeType) (NodeType, bool),
	current NodeType,
) []NodeType {
	path := []NodeType{current}
	for {
		previousNode, exists := parentOf(current)
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	slices.Reverse(path)
	return path
}
