package tournament

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 100

var (
	ErrNotFound          = errors.New("tournament not found")
	ErrAlreadyRegistered = errors.New("player already registered in tournament")
)

// Tournament groups participants and the matches they play.
type Tournament struct {
	ID   int64
	Name string
}

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("tournament name must be at most %d characters", MaxNameLength)
	}

	return nil
}
