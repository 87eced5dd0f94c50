package bitset

import (
	"math/big"
	"strings"
)

// A Bitset is an ordered list of bits with an explicit length. It uses the
// built-in big.Int as the underlying storage scheme. The big.Int maintains
// an ordered list of bits and provides an interface where we can flip each
// bit individually. The Bitset type acts as a wrapper and a clean interface
// on top.
//
// We implement a custom Bitset data structure using big.Int rather than using
// an off-the-shelf solution because we need full control over bit ordering
// and length semantics. Out of the box, the built-in big.Int supports
// individual bit operations, safe indexing & boundary checks, dynamic
// resizing, and bitwise XOR. It allows us to implement a straightforward
// Bitset data structure while having full transparency into the underlying
// implementation, and no reliance on 3rd party libraries.
//
// Unlike big.Int.BitLen, the length is tracked separately from the stored
// value. A keccak bit string has a fixed width where high zero bits are
// significant, so a Bitset of length 1600 with all bits false is distinct
// from an empty Bitset.
type Bitset struct {
	store  *big.Int
	length int
}

// Initializes a new Bitset of the given length with zero value for all bits.
func NewBitset(length int) *Bitset {
	return &Bitset{
		store:  big.NewInt(0),
		length: length,
	}
}

// Gets the value of the bit at the given index.
func (b *Bitset) Get(index int) bool {
	if index < 0 || index >= b.length {
		panic("bitset: Get index out of range")
	}
	return b.store.Bit(index) == 1
}

// Set the value of the bit at the given index, and returns the updated Bitset
// for method chaining.
func (b *Bitset) Set(index int, newValue bool) *Bitset {
	if index < 0 || index >= b.length {
		panic("bitset: Set index out of range")
	}
	booleanValue := uint(0)
	if newValue {
		booleanValue = 1
	}

	b.store.SetBit(b.store, index, booleanValue)
	return b
}

// Returns the total number of bits held by this bitset, including high
// zero bits.
func (b *Bitset) Len() int {
	return b.length
}

// Returns a new Bitset holding the bits in the half-open range
// [start, end). Bit i of the result is bit start+i of the receiver.
func (b *Bitset) Slice(start int, end int) *Bitset {
	if start < 0 || end > b.length || start > end {
		panic("bitset: Slice range out of bounds")
	}
	result := NewBitset(end - start)
	for ii := start; ii < end; ii++ {
		if b.store.Bit(ii) == 1 {
			result.store.SetBit(result.store, ii-start, 1)
		}
	}
	return result
}

// Returns a new Bitset holding the receiver's bits followed by the other
// Bitset's bits. Neither input is modified.
func (b *Bitset) Append(other *Bitset) *Bitset {
	result := NewBitset(b.length + other.length)
	result.store.Or(result.store, b.store)
	shifted := new(big.Int).Lsh(other.store, uint(b.length))
	result.store.Or(result.store, shifted)
	return result
}

// XORs the other Bitset into the receiver bit by bit, and returns the
// receiver for method chaining. Both bitsets must have the same length.
func (b *Bitset) Xor(other *Bitset) *Bitset {
	if b.length != other.length {
		panic("bitset: Xor length mismatch")
	}
	b.store.Xor(b.store, other.store)
	return b
}

// Returns a deep copy of the receiver.
func (b *Bitset) Copy() *Bitset {
	return &Bitset{
		store:  new(big.Int).Set(b.store),
		length: b.length,
	}
}

func (b *Bitset) Eq(other *Bitset) bool {
	if b == nil || other == nil {
		return false
	}
	return b.length == other.length && b.store.Cmp(other.store) == 0
}

// Renders the bits in index order, lowest index first. Only used for
// debugging and test failure output.
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for ii := 0; ii < b.length; ii++ {
		if b.store.Bit(ii) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
