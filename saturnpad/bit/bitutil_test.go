package bit

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		index    uint8
		expected uint8
	}{
		{0, 0b00000001},
		{3, 0b00001000},
		{7, 0b10000000},
		{8, 0},
		{255, 0},
	}

	for _, tt := range tests {
		result := Mask(tt.index)
		if result != tt.expected {
			t.Errorf("Mask(%d) = %08b; want %08b", tt.index, result, tt.expected)
		}
	}
}

func TestIsSet(t *testing.T) {
	tests := []struct {
		byte     uint8
		index    uint8
		expected bool
	}{
		{0b10101010, 0, false},
		{0b10101010, 1, true},
		{0b10101010, 2, false},
		{0b10101010, 7, true},
		{0b10101010, 8, false},
		{0b10101010, 255, false},
	}

	for _, tt := range tests {
		result := IsSet(tt.index, tt.byte)
		if result != tt.expected {
			t.Errorf("IsSet(%d, %08b) = %v; want %v", tt.index, tt.byte, result, tt.expected)
		}
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		byte     uint8
		index    uint8
		expected uint8
	}{
		{0b10101010, 0, 0b10101011},
		{0b10101010, 2, 0b10101110},
		{0b10101010, 7, 0b10101010},
		{0b10101010, 8, 0b10101010},
	}

	for _, tt := range tests {
		result := Set(tt.index, tt.byte)
		if result != tt.expected {
			t.Errorf("Set(%d, %08b) = %08b; want %08b", tt.index, tt.byte, result, tt.expected)
		}
	}
}

func TestReset(t *testing.T) {
	tests := []struct {
		byte     uint8
		index    uint8
		expected uint8
	}{
		{0b10101011, 0, 0b10101010},
		{0b10101011, 1, 0b10101001},
		{0b10101011, 7, 0b00101011},
		{0b10101011, 8, 0b10101011},
	}

	for _, tt := range tests {
		result := Reset(tt.index, tt.byte)
		if result != tt.expected {
			t.Errorf("Reset(%d, %08b) = %08b; want %08b", tt.index, tt.byte, result, tt.expected)
		}
	}
}

func TestAssign(t *testing.T) {
	if got := Assign(4, 0, true); got != 0b00010000 {
		t.Errorf("Assign(4, 0, true) = %08b", got)
	}
	if got := Assign(4, 0xFF, false); got != 0b11101111 {
		t.Errorf("Assign(4, 0xFF, false) = %08b", got)
	}
}

func TestExtractBits(t *testing.T) {
	tests := []struct {
		value           uint8
		highBit, lowBit uint8
		expected        uint8
	}{
		{0b11010110, 6, 4, 0b101},
		{0b00001100, 3, 2, 0b11},
		{0b01000000, 7, 6, 0b01},
		{0b10000000, 7, 6, 0b10},
		{0b11111111, 0, 0, 0b1},
	}

	for _, tt := range tests {
		result := ExtractBits(tt.value, tt.highBit, tt.lowBit)
		if result != tt.expected {
			t.Errorf("ExtractBits(%08b, %d, %d) = %b; want %b", tt.value, tt.highBit, tt.lowBit, result, tt.expected)
		}
	}
}
