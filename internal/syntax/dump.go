package syntax

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// Fdump writes the Go structure of t to w.
func Fdump(w io.Writer, t Term) {
	dumpConfig.Fdump(w, t)
}
