package huffcodec

import "sort"

// node is a binary Huffman tree node: a leaf carries a symbol, an
// internal node carries two owned children in left/right order. Every
// node is built once by buildTree and walked once by
// buildEncodingTable; nothing is shared between trees.
type node struct {
	isLeaf   bool
	symbol   byte
	weight   int
	children [2]*node
}

// buildTree merges a frequency table into a single Huffman tree using
// the classical two-smallest-weights strategy, with one deliberate
// deviation from the textbook version: at every merge the *entire*
// current root list is re-sorted by (weight, leaf-before-internal)
// rather than just tracking the two smallest. On a weight tie a leaf
// always precedes an internal node, which tends to keep leaves near
// the top of the tree and lowers the maximum code length in practice.
func buildTree(freq [alphabetSize]int) *node {
	roots := make([]*node, 0, alphabetSize)
	for sym := 0; sym < alphabetSize; sym++ {
		if freq[sym] > 0 {
			roots = append(roots, &node{isLeaf: true, symbol: byte(sym), weight: freq[sym]})
		}
	}

	for len(roots) > 1 {
		sort.SliceStable(roots, func(i, j int) bool {
			if roots[i].weight != roots[j].weight {
				return roots[i].weight < roots[j].weight
			}
			return roots[i].isLeaf && !roots[j].isLeaf
		})

		merged := &node{
			weight:   roots[0].weight + roots[1].weight,
			children: [2]*node{roots[0], roots[1]},
		}
		roots = append(roots[2:], merged)
	}

	return roots[0]
}
