// Package bit holds the bit helpers shared by the port, pad and mapping code.
// All helpers work on 8 bit values, the width of every AVR I/O register.
package bit

// Mask returns a byte with only the bit at the specified index set.
// Indexes past 7 give an empty mask.
func Mask(index uint8) uint8 {
	if index > 7 {
		return 0
	}
	return 1 << index
}

// IsSet will check if the bit at the specified index is set to 1 or not.
func IsSet(index, byte uint8) bool {
	return byte&Mask(index) != 0
}

// Set will return the passed byte with the bit at the specified index set to 1.
func Set(index, byte uint8) uint8 {
	return byte | Mask(index)
}

// Reset will return the passed byte with the bit at the specified index set to 0.
func Reset(index, byte uint8) uint8 {
	return byte &^ Mask(index)
}

// Assign sets or resets the bit at index depending on value.
func Assign(index, byte uint8, value bool) uint8 {
	if value {
		return Set(index, byte)
	}
	return Reset(index, byte)
}

// ExtractBits extracts bits from highBit to lowBit (inclusive)
// Example: ExtractBits(0b11010110, 6, 4) -> 0b101 (extracts bits 6, 5, 4)
func ExtractBits(value uint8, highBit, lowBit uint8) uint8 {
	shift := lowBit
	width := highBit - lowBit + 1
	mask := uint8((1 << width) - 1)
	return (value >> shift) & mask
}
