package board

// Debug gates verbose placement-enumeration logging. Off by default; set it
// from a caller (e.g. a CLI flag) to log expansion counts the way the
// teacher's DebugMoveValidation switch gates its own search diagnostics.
var Debug = false
