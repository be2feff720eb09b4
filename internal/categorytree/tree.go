// Package categorytree maintains the category hierarchy and its flat
// path-list form. Children keep insertion order: the flattened order drives
// navigation rendering and cascading selection downstream, so it must never
// depend on map iteration order.
package categorytree

import (
	"regexp"

	"rewindfinds/shopflow/internal/models"
	"rewindfinds/shopflow/internal/pipelineerror"
	"rewindfinds/shopflow/internal/textutils"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Node is a single category with a URL-safe key, a display alias and
// ordered children. The empty key is the catch-all marker.
type Node struct {
	Key   string
	Alias string

	children []*Node
	byKey    map[string]*Node
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Child looks up a direct child by key.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.byKey[key]
	return c, ok
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) addChild(key, alias string) *Node {
	child := &Node{Key: key, Alias: alias, byKey: map[string]*Node{}}
	n.children = append(n.children, child)
	n.byKey[key] = child
	return child
}

func (n *Node) removeChild(key string) {
	delete(n.byKey, key)
	for i, c := range n.children {
		if c.Key == key {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Tree is the in-memory category hierarchy. The zero value is not usable;
// construct with New or FromPathList.
type Tree struct {
	root *Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: &Node{byKey: map[string]*Node{}}}
}

// Roots returns the top-level categories in insertion order.
func (t *Tree) Roots() []*Node {
	return t.root.children
}

// DefaultAlias derives the display label for a key when none is set: a
// title-cased, hyphen-to-space transform, or the blank placeholder for the
// catch-all key.
func DefaultAlias(key string) string {
	if key == "" {
		return models.BlankKeyLabel
	}
	return textutils.TitleCase(textutils.HyphensToSpaces(key))
}

// ValidateKey checks that a key is URL-safe. The empty string is exempt: it
// is the explicit catch-all marker.
func ValidateKey(key string) error {
	if key == "" {
		return nil
	}
	if !keyPattern.MatchString(key) {
		return &pipelineerror.InvalidKeyError{Key: key}
	}
	return nil
}

// resolve walks the tree along a path, returning the final node.
func (t *Tree) resolve(path models.CategoryPath) (*Node, error) {
	node := t.root
	for _, key := range path {
		child, ok := node.Child(key)
		if !ok {
			return nil, &pipelineerror.NotFoundError{Path: path.String()}
		}
		node = child
	}
	return node, nil
}

// AddNode inserts a new category under parentPath. Interactive inserts
// reject sibling duplicates, unlike the bulk FromPathList rebuild.
func (t *Tree) AddNode(parentPath models.CategoryPath, key, alias string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	parent, err := t.resolve(parentPath)
	if err != nil {
		return err
	}
	if _, exists := parent.Child(key); exists {
		return &pipelineerror.DuplicateKeyError{Key: key, ParentPath: parentPath.String()}
	}
	if alias == "" {
		alias = DefaultAlias(key)
	}
	parent.addChild(key, alias)
	return nil
}

// RemoveNode removes the node at path together with all its descendants.
func (t *Tree) RemoveNode(path models.CategoryPath) error {
	if len(path) == 0 {
		return &pipelineerror.NotFoundError{Path: path.String()}
	}
	parent, err := t.resolve(path[:len(path)-1])
	if err != nil {
		return err
	}
	key := path[len(path)-1]
	if _, exists := parent.Child(key); !exists {
		return &pipelineerror.NotFoundError{Path: path.String()}
	}
	parent.removeChild(key)
	return nil
}

// SetAlias updates the display alias of the node at path.
func (t *Tree) SetAlias(path models.CategoryPath, alias string) error {
	node, err := t.resolve(path)
	if err != nil {
		return err
	}
	node.Alias = alias
	return nil
}

// Flatten returns every root-to-leaf path in depth-first insertion order.
// Only leaves contribute paths.
func (t *Tree) Flatten() []models.CategoryPath {
	var paths []models.CategoryPath
	var walk func(n *Node, prefix models.CategoryPath)
	walk = func(n *Node, prefix models.CategoryPath) {
		for _, child := range n.children {
			path := append(prefix.Clone(), child.Key)
			if child.IsLeaf() {
				paths = append(paths, path)
			} else {
				walk(child, path)
			}
		}
	}
	walk(t.root, nil)
	return paths
}

// FromPathList rebuilds a tree from its flat interchange form, creating
// intermediate nodes with default aliases. Inserting the same path twice is
// a no-op, so a deduplicated-and-ordered list round-trips through Flatten.
func FromPathList(paths []models.CategoryPath) *Tree {
	t := New()
	for _, path := range paths {
		node := t.root
		for _, key := range path {
			child, ok := node.Child(key)
			if !ok {
				child = node.addChild(key, DefaultAlias(key))
			}
			node = child
		}
	}
	return t
}
