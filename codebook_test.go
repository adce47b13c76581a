package huffcodec

import "testing"

func TestBuildEncodingTableAbsentSymbolsAreZeroLength(t *testing.T) {
	var freq [alphabetSize]int
	freq['a'] = 3
	freq['b'] = 1

	root := buildTree(freq)
	table, err := buildEncodingTable(root)
	if err != nil {
		t.Fatal(err)
	}

	if table['c'].length != 0 {
		t.Fatalf("absent symbol got length %d, want 0", table['c'].length)
	}
	if table['a'].length == 0 || table['b'].length == 0 {
		t.Fatal("present symbols must have a nonzero code length")
	}
}

func TestBuildEncodingTableFirstEdgeIsLSB(t *testing.T) {
	var freq [alphabetSize]int
	freq['a'] = 1
	freq['b'] = 1

	root := buildTree(freq)
	table, err := buildEncodingTable(root)
	if err != nil {
		t.Fatal(err)
	}

	// Two leaves: codes are one bit each, and by the tie-break rule
	// the first-sorted leaf becomes child[0] (bit 0).
	for _, e := range []codeEntry{table['a'], table['b']} {
		if e.length != 1 {
			t.Fatalf("length = %d, want 1", e.length)
		}
	}
	if table['a'].bits == table['b'].bits {
		t.Fatal("two-symbol codes must differ")
	}
	if table['a'].bits != 0 || table['b'].bits != 1 {
		t.Fatalf("codes a=%b b=%b, want a=0 (child[0]) b=1 (child[1])", table['a'].bits, table['b'].bits)
	}
}

func TestDecodingTablePopulateCoversAllPadding(t *testing.T) {
	var table decodingTable
	table.populate('x', 4, 0b0101)

	count := 0
	for idx, e := range table {
		if e.length == 0 {
			continue
		}
		if idx&0xF != 0b0101 {
			t.Fatalf("index %#x has entry but low 4 bits don't match code", idx)
		}
		count++
	}
	if count != 1<<(16-4) {
		t.Fatalf("populated %d entries, want %d", count, 1<<(16-4))
	}
}

func TestDecodingTablePopulateFullLengthSixteen(t *testing.T) {
	var table decodingTable
	table.populate('y', 16, 0xBEEF)

	if table[0xBEEF].symbol != 'y' || table[0xBEEF].length != 16 {
		t.Fatalf("entry at 0xBEEF = %+v", table[0xBEEF])
	}
	// No padding at length 16: exactly one index is populated.
	count := 0
	for _, e := range table {
		if e.length != 0 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("populated %d entries, want 1", count)
	}
}

func TestCodebookEntryRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	cursor := 0
	writeCodebookEntry(buf, &cursor, 'Q', 5, 0b10101)

	cursor = 0
	symbol, length, code := readCodebookEntry(buf, &cursor)
	if symbol != 'Q' || length != 5 || code != 0b10101 {
		t.Fatalf("got (%q, %d, %#x)", symbol, length, code)
	}
}

func TestCodebookEntryLengthSixteenRecycledAsZero(t *testing.T) {
	buf := make([]byte, 8)
	cursor := 0
	writeCodebookEntry(buf, &cursor, 'Z', 16, 0xBEEF)

	// The length field on the wire must be 0, not 16.
	lenFieldCursor := 8
	lenField := peek16(buf, lenFieldCursor) & 0xFF
	if lenField != 0 {
		t.Fatalf("serialized length field = %d, want 0", lenField)
	}

	cursor = 0
	symbol, length, code := readCodebookEntry(buf, &cursor)
	if symbol != 'Z' || length != 16 || code != 0xBEEF {
		t.Fatalf("got (%q, %d, %#x)", symbol, length, code)
	}
}
