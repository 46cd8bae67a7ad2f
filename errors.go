package nanbox

import "github.com/zeebo/errs"

var (
	// Error is the class of general codec errors.
	Error = errs.Class("nanbox")

	// OverflowError is returned when an integer or cell address does not
	// fit in its payload bits.
	OverflowError = errs.Class("payload overflow")

	// TagError is returned when a cell tag is outside Tag1 through Tag7.
	TagError = errs.Class("invalid tag")
)
