package mayo

import (
	"errors"

	"mayo-go/gf16"
	"mayo-go/matrix"
)

// Error kinds returned by this package. DimensionMismatch and
// FieldInverseOfZero surface from the matrix/gf16 packages and are
// re-exported here as sentinels callers of this package can match
// against with errors.Is.
var (
	ErrUnknownVariant              = errors.New("mayo: unknown variant")
	ErrInvalidKeyFormat            = errors.New("mayo: invalid key format")
	ErrInvalidSignatureFormat      = errors.New("mayo: invalid signature format")
	ErrKeygenRandomnessUnavailable = errors.New("mayo: keygen randomness unavailable")
	ErrSignRetriesExhausted        = errors.New("mayo: signing retries exhausted")

	ErrDimensionMismatch  = matrix.ErrDimensionMismatch
	ErrFieldInverseOfZero = gf16.ErrInverseOfZero
)

// MaxSignRetries bounds Algorithm 8's salt+vinegar retry loop. It is a
// fixed bound, not a caller-tunable deadline.
const MaxSignRetries = 256
