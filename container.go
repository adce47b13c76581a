// Package huffcodec implements a self-describing Huffman codec for
// arbitrary byte streams: Encode produces a single container that
// embeds both the codebook and the encoded payload, and Decode (or
// DecodeInto) recovers the original bytes from that container alone.
//
// The codec is synchronous and single-threaded: every call runs to
// completion on the calling goroutine, keeps no scratch state (tree,
// tables) beyond the call, and touches no shared state, so two Encode or
// Decode calls on disjoint inputs never interfere with each other.
//
// It is not a general-purpose compressor. There is no streaming mode,
// no adaptive model, and no canonical codebook encoding. The
// codebook is written out verbatim, symbol by symbol. For arbitrary
// byte streams with skewed frequencies it still beats a raw copy; for
// anything else, reach for something heavier.
package huffcodec

import "encoding/binary"

// headerSize is the fixed portion of the container before the
// codebook: a 32-bit decompressed length and a 16-bit codebook bit
// length, both little-endian.
const headerSize = 6

// Encode compresses input into a self-describing container: a 6-byte
// header, the serialized codebook, the bit-packed payload, and a
// single trailing guard byte so decode's 3-byte lookahead never reads
// past the buffer. Encode fails with ErrEmptyInput on empty input, and
// with ErrCodeTooLong if the tie-break merge order would assign any
// symbol a code longer than 16 bits.
func Encode(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	freq, distinct := analyzeFrequency(input)
	if distinct == 1 {
		bumpDegenerate(&freq)
	}

	root := buildTree(freq)
	table, err := buildEncodingTable(root)
	if err != nil {
		return nil, err
	}

	headerBits := 0
	for sym := 0; sym < alphabetSize; sym++ {
		if table[sym].length > 0 {
			headerBits += 16 + int(table[sym].length)
		}
	}

	payloadBits := 0
	for _, b := range input {
		payloadBits += int(table[b].length)
	}

	total := headerSize + (headerBits+payloadBits+7)/8 + 1
	out := make([]byte, total)

	binary.LittleEndian.PutUint32(out[0:4], uint32(len(input)))
	binary.LittleEndian.PutUint16(out[4:6], uint16(headerBits))

	cursor := headerSize * 8
	for sym := 0; sym < alphabetSize; sym++ {
		e := table[sym]
		if e.length == 0 {
			continue
		}
		writeCodebookEntry(out, &cursor, byte(sym), e.length, e.bits)
	}

	for _, b := range input {
		e := table[b]
		writeBits(out, e.bits, &cursor, int(e.length))
	}

	return out, nil
}

// Decode recovers the original byte stream from a container produced
// by Encode. A truncated or otherwise corrupted container is not
// detected: Decode will not panic on any input of at least 9 bytes
// (the 6-byte header plus the 3-byte lookahead guard), but the bytes
// it returns are undefined.
func Decode(input []byte) ([]byte, error) {
	n := binary.LittleEndian.Uint32(input[0:4])
	out := make([]byte, n)
	decodeInto(input, out)
	return out, nil
}

// DecodeInto decodes input into dst, which must be at least as large
// as the decompressed length recorded in the container's header; it
// returns that length. If dst is too small, DecodeInto fails with
// ErrShortBuffer and dst is left untouched.
func DecodeInto(input []byte, dst []byte) (uint32, error) {
	n := binary.LittleEndian.Uint32(input[0:4])
	if uint32(len(dst)) < n {
		return 0, ErrShortBuffer
	}
	decodeInto(input, dst[:n])
	return n, nil
}

// decodeInto rebuilds the decoding table from the serialized codebook
// and walks the payload one symbol at a time: peek the next 16 bits,
// resolve them with a single indexed read, advance by the code's true
// length.
func decodeInto(input []byte, out []byte) {
	headerBits := binary.LittleEndian.Uint16(input[4:6])

	var table decodingTable
	cursor := headerSize * 8
	limit := headerSize*8 + int(headerBits)
	for cursor < limit {
		symbol, length, code := readCodebookEntry(input, &cursor)
		table.populate(symbol, length, code)
	}

	for i := range out {
		window := peek16(input, cursor)
		entry := table[window]
		out[i] = entry.symbol
		cursor += int(entry.length)
	}
}
