package internalerror

import (
	"errors"
)

var (
	//field accessor, the messages are part of the host contract
	FieldNegative    = errors.New("field cannot be negative")
	WidthNotPositive = errors.New("width must be positive")
	NonExistentBits  = errors.New("trying to access non-existent bits")

	EmptyOperands    = errors.New("at least one operand is required")
	InvalidInput     = errors.New("Invalid input")
	BadArgument      = errors.New("bad argument")
	UnknownOperation = errors.New("unknown operation")
)
