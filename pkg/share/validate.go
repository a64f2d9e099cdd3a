package share

import (
	"fmt"
	"regexp"
	"strings"

	lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
)

// emailRegex is a deliberately simple address-shape check, not full RFC 5322.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateAddress reports whether addr looks like an email address.
func ValidateAddress(addr string) bool {
	return emailRegex.MatchString(strings.TrimSpace(addr))
}

// Validate checks a share request. All failures are ErrValidation so callers
// can map them to a 400 response.
func Validate(req Request) error {
	if len(req.Recipients) == 0 {
		return fmt.Errorf("%w: recipients list is empty", lerrors.ErrValidation)
	}

	var invalid []string
	for _, addr := range req.Recipients {
		if !ValidateAddress(addr) {
			invalid = append(invalid, addr)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: invalid recipient addresses: %s",
			lerrors.ErrValidation, strings.Join(invalid, ", "))
	}

	if strings.TrimSpace(req.Body) == "" && strings.TrimSpace(req.Summary) == "" {
		return fmt.Errorf("%w: both body and summary are empty", lerrors.ErrValidation)
	}

	if _, ok := LookupLayout(req.Format); !ok {
		return fmt.Errorf("%w: unknown email format %q", lerrors.ErrValidation, req.Format)
	}

	return nil
}
