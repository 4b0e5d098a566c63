package postman

import (
	"fmt"
	"regexp"
)

const (
	// ExampleID is the sample identifier quoted in ID format errors.
	ExampleID = "bf5cb6e7-0a1e-4b82-a577-b2068a70f830"

	// ExampleUID is the sample owner-scoped identifier quoted in UID format errors.
	ExampleUID = "12345678-" + ExampleID
)

var (
	idPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	uidPattern = regexp.MustCompile(`^[0-9]{1,10}-[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	numericPattern = regexp.MustCompile(`^[0-9]+$`)
	ownerPattern   = regexp.MustCompile(`^[0-9]{1,10}$`)
)

// IsID reports whether value is a UUID formatted resource ID.
func IsID(value string) bool {
	return idPattern.MatchString(value)
}

// IsUID reports whether value is an owner-scoped UID ("<ownerId>-<ID>").
func IsUID(value string) bool {
	return uidPattern.MatchString(value)
}

// ValidateID checks that value is a well-formed ID before it is placed in a URL.
// The check is purely syntactic: case is not normalized and whitespace is not trimmed.
func ValidateID(value, fieldName string) error {
	if value == "" {
		return requiredError(fieldName)
	}

	if !IsID(value) {
		return &InvalidArgumentError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a valid ID format (e.g., '%s')", fieldName, ExampleID),
		}
	}

	return nil
}

// ValidateUID checks that value is a well-formed UID before it is placed in a URL.
func ValidateUID(value, fieldName string) error {
	if value == "" {
		return requiredError(fieldName)
	}

	if !IsUID(value) {
		return &InvalidArgumentError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be a valid UID format (e.g., '%s')", fieldName, ExampleUID),
		}
	}

	return nil
}

// BuildUID joins an owner ID and an object ID into a UID. A value that is
// already a UID is returned unchanged and ownerID is ignored. Otherwise
// ownerID must be 1-10 digits so the result is itself a valid UID.
func BuildUID(ownerID, objectIDOrUID string) (string, error) {
	if IsUID(objectIDOrUID) {
		return objectIDOrUID, nil
	}

	err := ValidateID(objectIDOrUID, "objectId")
	if err != nil {
		return "", err
	}

	err = ValidateNumericID(ownerID, "ownerId")
	if err != nil {
		return "", err
	}

	if !ownerPattern.MatchString(ownerID) {
		return "", &InvalidArgumentError{
			Field:   "ownerId",
			Message: "ownerId must be at most 10 digits",
		}
	}

	return ownerID + "-" + objectIDOrUID, nil
}

func requiredError(fieldName string) error {
	return &InvalidArgumentError{
		Field:   fieldName,
		Message: fieldName + " is required",
	}
}

// ValidateRequired checks that a free-form argument such as a slug or file
// path is not empty.
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return requiredError(fieldName)
	}

	return nil
}

// ValidateNumericID checks that value is a decimal identifier, as used for
// user IDs.
func ValidateNumericID(value, fieldName string) error {
	if value == "" {
		return requiredError(fieldName)
	}

	if !numericPattern.MatchString(value) {
		return &InvalidArgumentError{
			Field:   fieldName,
			Message: fieldName + " must be a numeric ID (e.g., '12345678')",
		}
	}

	return nil
}

// ValidatePositive checks that an integer identifier, such as a comment ID,
// is greater than zero.
func ValidatePositive(value int, fieldName string) error {
	if value <= 0 {
		return &InvalidArgumentError{
			Field:   fieldName,
			Message: fieldName + " must be a positive integer",
		}
	}

	return nil
}
