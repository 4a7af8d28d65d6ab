package sd

import _ "embed"

// Version is the release version of sd.
//
//go:embed VERSION
var Version string
