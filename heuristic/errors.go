package heuristic

import "errors"

// ErrMissingTables is returned by NewProvider when kind needs a
// walking-distance or pattern table that tables does not supply.
var ErrMissingTables = errors.New("heuristic: kind requires tables that were not supplied")

// ErrInvalidKind is returned by NewProvider for an unrecognized Kind, or
// for Custom (built instead via NewCustomProvider).
var ErrInvalidKind = errors.New("heuristic: invalid or unsupported kind")
