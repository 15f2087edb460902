package config

import "reflect"

// redactedMark replaces secret values in Redacted output.
const redactedMark = "********"

// Redacted returns every field keyed by its schema name, with secrets
// masked.  Absent optional values map to nil so the distinction from an
// empty string survives.
func (s Settings) Redacted() map[string]any {
	out := make(map[string]any, len(Schema))
	rv := reflect.ValueOf(s)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		key := rt.Field(i).Tag.Get("koanf")
		f, ok := lookupField(key)
		if !ok {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				out[key] = nil
				continue
			}
			fv = fv.Elem()
		}
		if f.Secret {
			out[key] = redactedMark
			continue
		}
		out[key] = fv.Interface()
	}
	return out
}
