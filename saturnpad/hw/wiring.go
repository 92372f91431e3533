package hw

// Pad connector. The Saturn pad multiplexes its buttons onto four data lines
// selected by S0 and S1.
var (
	SelectS1 = Line{PortB, 4}
	SelectS0 = Line{PortB, 5}

	DataD0 = Line{PortB, 6}
	DataD1 = Line{PortB, 7}
	DataD2 = Line{PortB, 2}
	DataD3 = Line{PortB, 3}
)

// Host connector, one line per button.
var (
	OutX = Line{PortA, 0}
	OutY = Line{PortA, 1}
	OutC = Line{PortA, 2}

	OutRight = Line{PortB, 0}
	OutUp    = Line{PortB, 1}

	OutB     = Line{PortD, 0}
	OutZ     = Line{PortD, 1}
	OutA     = Line{PortD, 2}
	OutLeft  = Line{PortD, 3}
	OutMode  = Line{PortD, 4}
	OutStart = Line{PortD, 5}
	OutDown  = Line{PortD, 6}
)

// DataLines lists the bus lines in D0..D3 order.
var DataLines = [4]Line{DataD0, DataD1, DataD2, DataD3}

// Outputs lists every line the adapter drives.
var Outputs = []Line{
	SelectS1, SelectS0,
	OutX, OutY, OutC,
	OutRight, OutUp,
	OutB, OutZ, OutA, OutLeft, OutMode, OutStart, OutDown,
}

// DirectionMask returns the data direction register value for a port: a 1
// for every line the adapter drives.
func DirectionMask(id PortID) uint8 {
	var mask uint8
	for _, l := range Outputs {
		if l.Port == id {
			mask |= l.Mask()
		}
	}
	return mask
}

// BusMask is the set of port B pins carrying pad data.
func BusMask() uint8 {
	var mask uint8
	for _, l := range DataLines {
		mask |= l.Mask()
	}
	return mask
}
