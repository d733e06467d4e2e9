package domain

import (
	"fmt"

	"github.com/itchan-dev/forum/shared/errors"
)

// entity describes a value object for error reporting.
type entity struct {
	code   string // e.g. NEW_THREAD
	action string // human readable, e.g. "create new thread"
}

func (e entity) invalid(reason string) *errors.ValidationError {
	var msg string
	switch reason {
	case errors.NotContainNeededProperty:
		msg = fmt.Sprintf("cannot %s because required property is missing", e.action)
	case errors.NotMeetDataTypeSpecification:
		msg = fmt.Sprintf("cannot %s because data type does not match", e.action)
	case UsernameLimitChar:
		msg = fmt.Sprintf("cannot %s because username exceeds %d characters", e.action, maxUsernameLen)
	case UsernameContainRestrictedCharacter:
		msg = fmt.Sprintf("cannot %s because username contains restricted characters", e.action)
	default:
		msg = fmt.Sprintf("cannot %s: %s", e.action, reason)
	}
	return &errors.ValidationError{Code: e.code + "." + reason, Message: msg}
}

// strings extracts the given keys from payload as strings.
// Every key is checked for presence before any key is checked for type,
// so a payload that is both incomplete and mistyped reports the missing property.
// Empty strings count as missing.
func (e entity) strings(p Payload, keys ...string) ([]string, error) {
	for _, k := range keys {
		v, ok := p[k]
		if !ok || v == nil {
			return nil, e.invalid(errors.NotContainNeededProperty)
		}
		if s, isStr := v.(string); isStr && s == "" {
			return nil, e.invalid(errors.NotContainNeededProperty)
		}
	}

	out := make([]string, len(keys))
	for i, k := range keys {
		s, ok := p[k].(string)
		if !ok {
			return nil, e.invalid(errors.NotMeetDataTypeSpecification)
		}
		out[i] = s
	}
	return out, nil
}
