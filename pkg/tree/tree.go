// Package tree rebuilds a target's directory hierarchy from flat, slash-delimited
// file paths.
package tree

import (
	"strings"

	"github.com/jupierce/xccov-pretty/pkg/report"
)

// Node is one path segment in a target's file tree. The root is named after the
// target and carries the target's record.
type Node struct {
	Name string

	// Record is the coverage for the file at this node, or nil when the node is
	// only a directory.
	Record report.Record

	children map[string]*Node
}

// New creates a node with no children
func New(name string, record report.Record) *Node {
	return &Node{Name: name, Record: record}
}

// Build returns the file tree for target, or nil when the target has no files.
// Empty targets show up as duplicates in SwiftPM test reports and are skipped.
func Build(target *report.TargetReport) *Node {
	if len(target.Files) == 0 {
		return nil
	}

	root := New(target.Name, target)
	for _, file := range target.Files {
		root.Add(file.Path, file)
	}
	return root
}

// Add creates the nodes for path below n and attaches record to the last one.
// Empty segments from leading, trailing or doubled slashes are kept as nodes.
// Adding the same path twice keeps the later record.
func (n *Node) Add(path string, record report.Record) *Node {
	current := n
	for _, segment := range strings.Split(path, "/") {
		child, ok := current.children[segment]
		if !ok {
			child = New(segment, nil)
			if current.children == nil {
				current.children = make(map[string]*Node)
			}
			current.children[segment] = child
		}
		current = child
	}
	current.Record = record
	return current
}

// IsDirectory reports whether the node has no coverage record of its own.
func (n *Node) IsDirectory() bool {
	return n.Record == nil
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// Child returns the child with the given segment name, or nil.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// Children returns the node's children in no particular order.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		children = append(children, child)
	}
	return children
}

// Leaves returns every record below n keyed by its slash-joined path relative to n.
func (n *Node) Leaves() map[string]report.Record {
	leaves := make(map[string]report.Record)
	var walk func(node *Node, prefix string)
	walk = func(node *Node, prefix string) {
		for name, child := range node.children {
			path := name
			if node != n {
				path = prefix + "/" + name
			}
			if child.Record != nil {
				leaves[path] = child.Record
			}
			walk(child, path)
		}
	}
	walk(n, "")
	return leaves
}
