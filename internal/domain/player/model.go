package player

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 100

var ErrNotFound = errors.New("player not found")

// Player is a registered competitor. Players are immutable after registration.
type Player struct {
	ID   int64
	Name string
}

func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("player name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("player name must be at most %d characters", MaxNameLength)
	}

	return nil
}
