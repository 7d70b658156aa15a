package validation

import (
	"errors"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// forbiddenPathChars lists characters rejected on at least one common
// filesystem.
const forbiddenPathChars = "\x00<>:\"|?*"

const pathErrorCode = "validation_invalid_path"

// IsValidPath reports whether s is a syntactically acceptable file path: not
// empty, not whitespace-only and free of forbiddenPathChars. It never touches
// the filesystem and does not resolve "." or "..".
func IsValidPath(s string) bool {
	if s == "" {
		return false
	}
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !strings.ContainsAny(s, forbiddenPathChars)
}

// PathRule applies IsValidPath as an ozzo-validation rule. Empty values are
// rejected too, so the rule can stand alone without validation.Required.
var PathRule ozzo.Rule = ozzo.By(func(value any) error {
	s, ok := value.(string)
	if !ok {
		return ozzo.NewError(pathErrorCode, "must be a string path")
	}
	if !IsValidPath(s) {
		return ozzo.NewError(pathErrorCode, "must be a valid file path")
	}
	return nil
})

// ValidatePath runs PathRule against s and returns the ozzo error, if any.
func ValidatePath(s string) error {
	return ozzo.Validate(s, PathRule)
}

// IsPathError reports whether err was produced by PathRule.
func IsPathError(err error) bool {
	var verr ozzo.Error
	if errors.As(err, &verr) {
		return verr.Code() == pathErrorCode
	}
	return false
}
