// Package contact classifies raw contact strings as email addresses or
// Telegram handles. Classification is pure syntax checking; it gates the
// password rules downstream (email requires a password, Telegram forbids one).
package contact

import (
	"strings"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
)

// Kind is the classified contact variant.
type Kind int

const (
	// KindEmail is a local@domain.tld address.
	KindEmail Kind = iota
	// KindTelegram is an @handle. Contact equality is the only proof of
	// ownership for this kind; it is a weaker identity factor than email+password.
	KindTelegram
)

// Classify trims raw and returns its kind plus the normalized contact.
// Rules:
//   - empty after trim: ErrInvalidContact
//   - leading '@': Telegram handle, at least 2 characters including '@'
//   - contains '@': email, split on the first '@'; local part must be
//     non-empty and the domain must contain a '.'
//   - anything else: ErrInvalidContact
func Classify(raw string) (Kind, string, error) {
	c := strings.TrimSpace(raw)
	if c == "" {
		return 0, "", errs.ErrInvalidContact
	}
	if strings.HasPrefix(c, "@") {
		if len(c) < 2 {
			return 0, "", errs.ErrInvalidContact
		}
		return KindTelegram, c, nil
	}
	if local, domain, ok := strings.Cut(c, "@"); ok {
		if local == "" || !strings.Contains(domain, ".") {
			return 0, "", errs.ErrInvalidContact
		}
		return KindEmail, c, nil
	}
	return 0, "", errs.ErrInvalidContact
}
