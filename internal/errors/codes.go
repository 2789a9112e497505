package errors

// Code classifies an error. The values follow the gRPC status names so they
// read the same in logs from every layer.
type Code string

const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

func (c Code) String() string {
	return string(c)
}

// Fatal reports whether a code means the current game cannot continue
// without outside intervention (a broken save or content set).
func (c Code) Fatal() bool {
	return c == CodeDataLoss || c == CodeInternal
}
