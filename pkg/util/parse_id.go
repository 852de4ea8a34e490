package util

import (
	"errors"
	"strconv"
)

var ErrBadID = errors.New("invalid id")

// ParseID converts a path parameter into a positive record id.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrBadID
	}

	return uint(id), nil
}
