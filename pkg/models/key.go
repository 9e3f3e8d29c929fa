package models

import (
	"strings"

	"github.com/gofrs/uuid"
)

const keyScheme = "uuid:"

// NewKey returns a fresh registry key of the form uuid:XXXXXXXX-XXXX-....
func NewKey() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return keyScheme + strings.ToUpper(u.String()), nil
}

// IsKey reports whether s looks like a uuid: registry key.
func IsKey(s string) bool {
	if !strings.HasPrefix(strings.ToLower(s), keyScheme) {
		return false
	}
	_, err := uuid.FromString(s[len(keyScheme):])
	return err == nil
}
