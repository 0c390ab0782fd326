package l10n

import (
	"errors"
)

var (
	// ErrMalformedSheet is returned for worksheet grids without the expected
	// header row or without any data rows.
	ErrMalformedSheet = errors.New("malformed sheet")

	// ErrResourceParse is returned for ARB files that are not a flat JSON
	// object of string values (metadata keys excepted).
	ErrResourceParse = errors.New("invalid resource file")

	// ErrResourceIO is returned for filesystem failures reading or writing
	// ARB files.
	ErrResourceIO = errors.New("resource file I/O error")
)
