package config

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errBadBool = errors.New("not a boolean")

// coerce converts a raw textual value into the field's kind.  Strings are
// kept verbatim; only numeric and boolean input is trimmed.
func coerce(f Field, raw string) (any, error) {
	var (
		val any
		err error
	)
	switch f.Kind {
	case KindString, KindPath:
		val = raw
	case KindInt:
		val, err = strconv.Atoi(strings.TrimSpace(raw))
	case KindBool:
		val, err = parseBool(raw)
	case KindList:
		val, err = parseList(raw)
	case KindEnum:
		if f.Normalize != nil {
			raw = f.Normalize(raw)
		}
		val = raw
	}
	if err != nil {
		return nil, &CoercionError{Field: f.Name, Value: raw, Kind: f.Kind, Err: err}
	}
	return val, nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, errBadBool
}

// parseList accepts a JSON array of strings or a comma-separated list.
// An empty value is an empty list, not an absent one.
func parseList(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return []string{}, nil
	}
	if strings.HasPrefix(s, "[") {
		out := []string{}
		if err := json.Unmarshal([]byte(s), &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
