package huffcodec

import "errors"

// ErrEmptyInput is returned by Encode when given a zero-length input;
// there is no frequency table to build a tree from.
var ErrEmptyInput = errors.New("huffcodec: empty input")

// ErrCodeTooLong is returned by Encode when the tie-break merge order
// assigns a symbol a code longer than 16 bits.
var ErrCodeTooLong = errors.New("huffcodec: code length exceeds 16 bits")

// ErrShortBuffer is returned by DecodeInto when the caller-supplied
// buffer is smaller than the decompressed length recorded in the
// container header.
var ErrShortBuffer = errors.New("huffcodec: destination buffer too small")
