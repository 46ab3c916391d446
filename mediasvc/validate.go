package mediasvc

import (
	"fmt"

	"github.com/google/uuid"
)

func validateUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%w: %s must be a UUIDv4: %s", ErrInvalidArgument, field, err)
	}

	return nil
}

func validateNonEmpty(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, field)
	}

	return nil
}

// maxPartNumber is the highest part number S3-style object stores accept (§4.5-B).
const maxPartNumber = 10_000

func validatePartNumber(number uint32) error {
	if number < 1 || number > maxPartNumber {
		return fmt.Errorf("%w: part_number must be between 1 and %d", ErrInvalidArgument, maxPartNumber)
	}

	return nil
}

// validatePartsAscending checks that 'parts' are listed in strictly ascending, contiguous order starting at 1, the
// precondition 'CompleteMultipartUpload' enforces before calling the object store (§4.5-B).
func validatePartsAscending(parts []uint32) error {
	for i, number := range parts {
		if int(number) != i+1 {
			return fmt.Errorf("%w: parts must be ascending and contiguous starting at 1", ErrInvalidArgument)
		}
	}

	return nil
}
