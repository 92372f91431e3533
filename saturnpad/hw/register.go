package hw

// Register represents an 8-bit I/O register held in memory.
type Register uint8

// NewRegister returns a register preloaded with value.
func NewRegister(value uint8) *Register {
	r := Register(value)
	return &r
}

// Get retrieves the register as a byte
func (r *Register) Get() uint8 {
	return uint8(*r)
}

// Set will replace the register value with the given byte
func (r *Register) Set(value uint8) {
	*r = Register(value)
}

// SetBits sets every bit in mask, leaving the others untouched.
func (r *Register) SetBits(mask uint8) {
	*r |= Register(mask)
}

// ClearBits clears every bit in mask, leaving the others untouched.
func (r *Register) ClearBits(mask uint8) {
	*r &^= Register(mask)
}

// ReadBits implements Port.
func (r *Register) ReadBits() uint8 {
	return r.Get()
}
