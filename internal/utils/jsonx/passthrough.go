// Package jsonx keeps JSON members a struct does not model so that
// upstream objects can be relayed without losing fields.
package jsonx

import (
	"encoding/json"
	"reflect"
	"strings"
)

// SplitUnknown decodes data into v, which must be a pointer to a struct, and
// returns the object members that none of v's fields claim. It returns nil
// when every member is claimed.
func SplitUnknown(data []byte, v any) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	known := fieldNames(reflect.TypeOf(v).Elem())
	for key := range members {
		if _, ok := known[strings.ToLower(key)]; ok {
			delete(members, key)
		}
	}
	if len(members) == 0 {
		return nil, nil
	}
	return members, nil
}

// MergeUnknown encodes v and adds the members of extra that v does not
// already emit.
func MergeUnknown(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := members[key]; !ok {
			members[key] = value
		}
	}
	return json.Marshal(members)
}

// fieldNames returns the lowercased JSON names of t's exported fields,
// matching encoding/json's case-insensitive decoding.
func fieldNames(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names[strings.ToLower(name)] = struct{}{}
	}
	return names
}
