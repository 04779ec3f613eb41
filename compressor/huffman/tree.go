package huffman

import (
	"container/heap"
	"fmt"
	"math"
)

const noChild int32 = -1

// node is one entry of a Tree's arena. A node is a leaf iff left == noChild;
// internal nodes always own exactly two children.
type node struct {
	weight      uint64
	left, right int32
	symbol      byte
}

// Tree is a Huffman tree stored as an arena of nodes addressed by index.
//
// Leaves occupy indices 0..k-1 in ascending symbol order and internal nodes
// follow in the order they were merged. The index doubles as the tie-break
// id, so the same frequency table always produces the same tree.
type Tree struct {
	nodes []node
	root  int32
}

type huffmanHeap struct {
	tree  *Tree
	items []int32
}

func (hub *huffmanHeap) Push(item any) {
	hub.items = append(hub.items, item.(int32))
}

func (hub *huffmanHeap) Pop() any {
	last := len(hub.items) - 1
	popped := hub.items[last]
	hub.items = hub.items[:last]
	return popped
}

func (hub *huffmanHeap) Len() int {
	return len(hub.items)
}

func (hub *huffmanHeap) Less(i, j int) bool {
	a, b := hub.items[i], hub.items[j]
	wa, wb := hub.tree.nodes[a].weight, hub.tree.nodes[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

func (hub *huffmanHeap) Swap(i, j int) {
	hub.items[i], hub.items[j] = hub.items[j], hub.items[i]
}

var _ heap.Interface = (*huffmanHeap)(nil)

// BuildTree builds the Huffman tree for freq by repeatedly merging the two
// lightest subtrees. The first subtree popped becomes the left child. A table
// with one symbol yields a tree whose root is that symbol's leaf.
func BuildTree(freq *FrequencyTable) (*Tree, error) {
	distinct := freq.Distinct()
	if distinct == 0 {
		return nil, fmt.Errorf("%w: no symbols", ErrInconsistentFrequencyTable)
	}

	tree := &Tree{nodes: make([]node, 0, 2*distinct-1)}
	treehub := &huffmanHeap{tree: tree, items: make([]int32, 0, distinct)}
	for symbol, count := range freq {
		if count == 0 {
			continue
		}
		id := int32(len(tree.nodes))
		tree.nodes = append(tree.nodes, node{
			weight: count,
			left:   noChild,
			right:  noChild,
			symbol: byte(symbol),
		})
		treehub.items = append(treehub.items, id)
	}

	heap.Init(treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(treehub).(int32)
		y := heap.Pop(treehub).(int32)
		id := int32(len(tree.nodes))
		tree.nodes = append(tree.nodes, node{
			weight: addSaturating(tree.nodes[x].weight, tree.nodes[y].weight),
			left:   x,
			right:  y,
		})
		heap.Push(treehub, id)
	}
	tree.root = heap.Pop(treehub).(int32)
	return tree, nil
}

// Leaves returns the number of leaves in the tree.
func (t *Tree) Leaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the saturated sum of all
// frequencies.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

func (t *Tree) isLeaf(h int32) bool {
	return t.nodes[h].left == noChild
}

// child returns the left child of h for bit 0 and the right child for bit 1.
func (t *Tree) child(h int32, bit bool) int32 {
	if bit {
		return t.nodes[h].right
	}
	return t.nodes[h].left
}

func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}
