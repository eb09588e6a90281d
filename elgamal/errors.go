package elgamal

import "errors"

var (
	// ErrVerification is returned when a decryption proof does not
	// satisfy the verification equations. It is an expected outcome for
	// a dishonest or mismatched proof, not an internal failure.
	ErrVerification = errors.New("elgamal: decryption proof verification failed")

	// ErrIncorrectPrefix is returned when a hex coordinate lacks the 0x prefix.
	ErrIncorrectPrefix = errors.New("elgamal: hex string must start with 0x")

	// ErrInvalidHexLength is returned when a hex coordinate is not exactly
	// 0x followed by two hex digits per coordinate byte.
	ErrInvalidHexLength = errors.New("elgamal: invalid hex string length")

	// ErrInvalidHex is returned when a hex coordinate contains non-hex digits.
	ErrInvalidHex = errors.New("elgamal: invalid hex digits")

	// ErrInvalidDecimal is returned when a decimal coordinate is empty,
	// signed, contains non-digits, or does not fit in a coordinate.
	ErrInvalidDecimal = errors.New("elgamal: invalid decimal string")

	// ErrInvalidEncoding is returned when binary or scalar input is malformed.
	ErrInvalidEncoding = errors.New("elgamal: invalid encoding")

	// ErrZeroScalar is returned when dividing a ciphertext by zero.
	ErrZeroScalar = errors.New("elgamal: scalar must be non-zero")

	// ErrPlaintextOutOfRange is returned when a point is not m*G for any
	// m within the searched range.
	ErrPlaintextOutOfRange = errors.New("elgamal: plaintext out of range")
)
