package errors

// ErrorCode is a string identifier for a specific failure condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeBadRequest    ErrorCode = "COMMON_002"
	ErrCodeNotFound      ErrorCode = "COMMON_003"
	ErrCodeValidation    ErrorCode = "COMMON_004"
	ErrCodeSerialization ErrorCode = "COMMON_005"
	ErrCodeIO            ErrorCode = "COMMON_006"
)

// Feature-table / grid error codes.
const (
	ErrCodeColumnLengthMismatch ErrorCode = "TBL_001"
	ErrCodeColumnNotFound       ErrorCode = "TBL_002"
	ErrCodeDuplicateColumn      ErrorCode = "TBL_003"
	ErrCodeGridExtentInvalid    ErrorCode = "TBL_004"
)

// Uncertainty-computation error codes.
const (
	ErrCodeTrainingTooSmall ErrorCode = "UNC_001"
	ErrCodeNoUsableFeatures ErrorCode = "UNC_002"
	ErrCodeRangeInvalid     ErrorCode = "UNC_003"
	ErrCodeWorkersInvalid   ErrorCode = "UNC_004"
	ErrCodeDimMismatch      ErrorCode = "UNC_005"
)

// Aliases used by the generic factory helpers.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")
)

// ErrorCodeExitStatus maps ErrorCodes to process exit statuses for the cast
// CLI: 2 for caller mistakes (bad input data or parameters), 3 for I/O and
// encoding failures, 1 for everything else.
var ErrorCodeExitStatus = map[ErrorCode]int{
	ErrCodeInternal:      1,
	ErrCodeBadRequest:    2,
	ErrCodeNotFound:      2,
	ErrCodeValidation:    2,
	ErrCodeSerialization: 3,
	ErrCodeIO:            3,

	ErrCodeColumnLengthMismatch: 2,
	ErrCodeColumnNotFound:       2,
	ErrCodeDuplicateColumn:      2,
	ErrCodeGridExtentInvalid:    2,

	ErrCodeTrainingTooSmall: 2,
	ErrCodeNoUsableFeatures: 2,
	ErrCodeRangeInvalid:     2,
	ErrCodeWorkersInvalid:   2,
	ErrCodeDimMismatch:      2,
}

// ExitStatus returns the CLI exit status for code, defaulting to 1 for codes
// absent from ErrorCodeExitStatus.
func ExitStatus(code ErrorCode) int {
	if s, ok := ErrorCodeExitStatus[code]; ok {
		return s
	}
	return 1
}
