// Package debug renders adapter state for trace logging.
package debug

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/mapping"
	"github.com/valerio/go-saturnpad/saturnpad/scan"
)

// ScanTrace is everything one scan produced.
type ScanTrace struct {
	Scan      uint64
	Snapshots scan.Snapshots
	Output    mapping.Output
	Latches   [hw.NumPorts]uint8
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// DumpScan returns a multi-line dump of a scan.
func DumpScan(trace ScanTrace) string {
	return dumper.Sdump(trace)
}
