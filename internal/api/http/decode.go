package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"clubhub-backend/internal/domain"
)

// rawObject defers per-field decoding so type violations surface as
// field-specific validation errors instead of a generic decode failure.
type rawObject map[string]json.RawMessage

var jsonNull = []byte("null")

func decodeObject(r *http.Request) (rawObject, error) {
	var obj rawObject
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		return nil, domain.NewValidationError("Request body must be a JSON object")
	}
	return obj, nil
}

// stringField reads a string-typed field. Absent or null fields decode to
// the empty string; any other non-string JSON value is rejected.
func (o rawObject) stringField(key, label string) (string, error) {
	raw, ok := o[key]
	if !ok || bytes.Equal(raw, jsonNull) {
		return "", nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", domain.NewValidationError(label + " must be a string")
	}
	return value, nil
}

// optionalStringField distinguishes absent from present for PATCH bodies.
func (o rawObject) optionalStringField(key, label string) (*string, error) {
	raw, ok := o[key]
	if !ok || bytes.Equal(raw, jsonNull) {
		return nil, nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, domain.NewValidationError(label + " must be a string")
	}
	return &value, nil
}

func (o rawObject) int64Field(key, label string) (int64, error) {
	raw, ok := o[key]
	if !ok || bytes.Equal(raw, jsonNull) {
		return 0, nil
	}
	var value int64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, domain.NewValidationError(label + " must be a number")
	}
	return value, nil
}

func (o rawObject) intField(key, label string) (int, error) {
	value, err := o.int64Field(key, label)
	return int(value), err
}

func (o rawObject) stringSliceField(key, label string) ([]string, error) {
	raw, ok := o[key]
	if !ok || bytes.Equal(raw, jsonNull) {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, domain.NewValidationError(label + " must be an array of strings")
	}
	return values, nil
}

// rawField passes a field through undecoded, for payloads whose shape a
// downstream validator reports on with its own messages.
func (o rawObject) rawField(key string) json.RawMessage {
	raw, ok := o[key]
	if !ok || bytes.Equal(raw, jsonNull) {
		return nil
	}
	return raw
}
