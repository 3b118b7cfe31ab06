package validator

import (
	"strings"
	"sync"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"eq":       "{field} must equal {param}",
	}

	overrideMu sync.RWMutex
	overrides  = map[string]string{}
)

// RegisterMessages installs user-facing messages keyed by "<path>|<tag>",
// where array indices in the path are normalized to "[]". Registered messages
// take precedence over the generic templates above.
func RegisterMessages(m map[string]string) {
	overrideMu.Lock()
	defer overrideMu.Unlock()

	for key, msg := range m {
		overrides[key] = msg
	}
}

func message(valErr val.FieldError, path string) string {
	normalized := arrayIndexRegex.ReplaceAllString(path, "[]")

	overrideMu.RLock()
	msg, ok := overrides[normalized+"|"+valErr.Tag()]
	overrideMu.RUnlock()

	if ok {
		return msg
	}

	if tmpl, ok := messages[valErr.Tag()]; ok {
		tmpl = strings.ReplaceAll(tmpl, "{field}", valErr.Field())
		tmpl = strings.ReplaceAll(tmpl, "{param}", valErr.Param())

		return tmpl
	}

	return valErr.Error()
}
