package block

// Status is the result kind returned alongside a byte count from every
// core operation. It is comparable so callers can check it against the
// exported sentinels with ==, and it also implements error so it drops
// into ordinary Go error handling.
type Status struct {
	code statusCode
	msg  string
}

type statusCode uint8

const (
	codeOK statusCode = iota
	codeDstTooShort
	codeInvalidData
	codeSrcTooLong
)

// OK reports whether the status represents success.
func (s Status) OK() bool { return s.code == codeOK }

// Error implements the error interface.
func (s Status) Error() string { return s.msg }

var (
	// StatusOK indicates the call completed successfully.
	StatusOK = Status{code: codeOK, msg: "ok"}

	// ErrDstTooShort indicates the destination buffer lacked room for
	// the (worst-case, for Encode; actual, for Decode) output.
	ErrDstTooShort = Status{code: codeDstTooShort, msg: "dst too short"}

	// ErrInvalidData indicates a malformed LZ4 block stream.
	ErrInvalidData = Status{code: codeInvalidData, msg: "invalid data"}

	// ErrSrcTooLong indicates the source exceeds the length this
	// implementation supports for the requested operation.
	ErrSrcTooLong = Status{code: codeSrcTooLong, msg: "src too long"}
)
