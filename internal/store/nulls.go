package store

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// NullFloat32 is a nullable single-precision column value. It is written
// as a float64, which every driver accepts and which holds a float32 exactly.
type NullFloat32 struct {
	Float32 float32
	Valid   bool
}

// NewNullFloat32 returns a valid NullFloat32.
func NewNullFloat32(f float32) NullFloat32 {
	return NullFloat32{Float32: f, Valid: true}
}

// Scan implements sql.Scanner.
func (n *NullFloat32) Scan(value any) error {
	if value == nil {
		n.Float32, n.Valid = 0, false
		return nil
	}
	switch v := value.(type) {
	case float32:
		n.Float32 = v
	case float64:
		n.Float32 = float32(v)
	case int64:
		n.Float32 = float32(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 32)
		if err != nil {
			return fmt.Errorf("scanning NullFloat32: %w", err)
		}
		n.Float32 = float32(f)
	case string:
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("scanning NullFloat32: %w", err)
		}
		n.Float32 = float32(f)
	default:
		return fmt.Errorf("scanning NullFloat32: unsupported type %T", value)
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (n NullFloat32) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return float64(n.Float32), nil
}

// MarshalJSON writes null for an invalid value.
func (n NullFloat32) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float32)
}

// UnmarshalJSON accepts a number or null; null clears Valid.
func (n *NullFloat32) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		n.Float32, n.Valid = 0, false
		return nil
	}
	if err := json.Unmarshal(data, &n.Float32); err != nil {
		return fmt.Errorf("decoding NullFloat32: %w", err)
	}
	n.Valid = true
	return nil
}
