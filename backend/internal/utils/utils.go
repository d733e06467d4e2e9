package utils

import (
	"strings"

	"github.com/google/uuid"
)

// IdGenerator produces entity ids of the form "<kind>-<16 hex chars>".
type IdGenerator func(kind string) string

func NewIdGenerator() IdGenerator {
	return func(kind string) string {
		return kind + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	}
}
