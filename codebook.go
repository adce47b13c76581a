package huffcodec

// decodeTableSize is 2^16: every possible 16-bit lookahead window gets
// its own entry, so decoding a symbol is always a single indexed read.
const decodeTableSize = 1 << 16

// codeEntry is a symbol's code word: the low length bits of bits hold
// the code, LSB-first in tree-traversal order. length == 0 means the
// symbol never appeared in the input.
type codeEntry struct {
	bits   uint16
	length uint8
}

// encodingTable maps symbol -> codeEntry, indexed by symbol value.
type encodingTable [alphabetSize]codeEntry

// decodeEntry is what a 16-bit lookahead window resolves to: the
// symbol it decodes as, and how many bits of the window its code word
// actually occupies.
type decodeEntry struct {
	symbol byte
	length uint8
}

// decodingTable is populated from a serialized codebook at decode
// time; it never sees the tree directly.
type decodingTable [decodeTableSize]decodeEntry

// buildEncodingTable walks the tree depth-first, threading the
// accumulated bits and depth through the recursion as plain
// parameters rather than hidden state, so repeated calls never
// interfere with each other. Descending to child[0] leaves bit depth
// as 0; descending to child[1] sets it. The first edge taken from the
// root therefore ends up in the LSB of the finished code word.
func buildEncodingTable(root *node) (encodingTable, error) {
	var table encodingTable
	var walkErr error

	var walk func(n *node, bits uint16, depth uint8)
	walk = func(n *node, bits uint16, depth uint8) {
		if walkErr != nil {
			return
		}
		if n.isLeaf {
			if depth > 16 {
				walkErr = ErrCodeTooLong
				return
			}
			mask := uint16(1)<<depth - 1
			table[n.symbol] = codeEntry{bits: bits & mask, length: depth}
			return
		}
		if depth == 16 {
			walkErr = ErrCodeTooLong
			return
		}
		walk(n.children[0], bits, depth+1)
		walk(n.children[1], bits|(1<<depth), depth+1)
	}
	walk(root, 0, 0)

	return table, walkErr
}

// writeCodebookEntry serializes one (symbol, length, code) triple per
// the container format: 8 bits of symbol, 8 bits of length (0 stands
// in for 16, the only value that doesn't fit the field), then the code
// word itself, LSB-first.
func writeCodebookEntry(buf []byte, cursor *int, symbol byte, length uint8, code uint16) {
	writeBits(buf, uint16(symbol), cursor, 8)

	lengthField := uint16(length)
	if length == 16 {
		lengthField = 0
	}
	writeBits(buf, lengthField, cursor, 8)

	writeBits(buf, code, cursor, int(length))
}

// readCodebookEntry deserializes one codebook entry at cursor and
// advances it past the entry. The length field's low nibble is taken
// literally except that 0 means 16 (the only way an 8-bit field can
// spell the maximum legal code length).
func readCodebookEntry(buf []byte, cursor *int) (symbol byte, length uint8, code uint16) {
	symbol = byte(peek16(buf, *cursor) & 0xFF)
	*cursor += 8

	lenField := peek16(buf, *cursor) & 0x0F
	if lenField == 0 {
		length = 16
	} else {
		length = uint8(lenField)
	}
	*cursor += 8

	code = peek16(buf, *cursor) & (uint16(1)<<length - 1)
	*cursor += int(length)

	return symbol, length, code
}

// populate fills every index whose low length bits equal code with
// (symbol, length), the "fat" entries that let the decoder resolve
// any 16-bit window in a single read regardless of the code's true
// length.
func (t *decodingTable) populate(symbol byte, length uint8, code uint16) {
	pad := 16 - int(length)
	for p := 0; p < 1<<pad; p++ {
		idx := uint32(code) | uint32(p)<<length
		t[idx] = decodeEntry{symbol: symbol, length: length}
	}
}
