package db

import (
	"fmt"
	"strings"
)

const (
	setGood    = "good"
	setMissing = "missing"
)

// parseSet accepts the output set names and a few aliases.
func parseSet(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", setGood, "classified":
		return setGood, nil
	case setMissing, "unclassified":
		return setMissing, nil
	default:
		return "", fmt.Errorf("unknown set %q (want good or missing)", s)
	}
}
