package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ParseInts parses a comma separated list such as "1,3,5,7".
func ParseInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty list")
	}
	parts := strings.Split(s, ",")
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		values[i] = v
	}
	return values, nil
}
