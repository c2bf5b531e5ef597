package payroll

import "errors"

var (
	ErrUnrecognizedAction = errors.New("unrecognized action")
	ErrNegativeUsage      = errors.New("negative data usage")
)
