package models

import (
	"fmt"
	json "github.com/goccy/go-json"
)

// FieldValue is what the picker stores in the content item field.
type FieldValue struct {
	Icon string `json:"icon"`
}

// EncodeFieldValue returns the stored text for a selection; an empty icon encodes as "".
func EncodeFieldValue(icon string) string {
	if icon == "" {
		return ""
	}
	data, _ := json.Marshal(FieldValue{Icon: icon})
	return string(data)
}

// DecodeFieldValue reads a stored field; nil or empty text means no selection.
func DecodeFieldValue(raw *string) (*FieldValue, error) {
	if !isSet(raw) {
		return nil, nil
	}
	var v FieldValue
	if err := json.Unmarshal([]byte(*raw), &v); err != nil {
		return nil, fmt.Errorf("invalid field value: %w", err)
	}
	if v.Icon == "" {
		return nil, nil
	}
	return &v, nil
}
