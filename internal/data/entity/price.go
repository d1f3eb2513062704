package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Price is a price exactly as the client sent it, kept as its JSON literal.
// "100" and 100 both round-trip unchanged. The zero value is an absent price.
type Price string

func NumberPrice(v float64) Price {
	return Price(strconv.FormatFloat(v, 'f', -1, 64))
}

func StringPrice(s string) Price {
	raw, _ := json.Marshal(s)
	return Price(raw)
}

// PriceOf converts a decoded value (string, number, ...) back into a Price.
func PriceOf(v any) Price {
	if v == nil {
		return ""
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return StringPrice(fmt.Sprint(v))
	}
	return Price(raw)
}

// Native returns the price as a plain Go value: string, float64 or nil.
func (p Price) Native() any {
	if p == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(p), &v); err != nil {
		return string(p)
	}
	return v
}

func (p Price) MarshalJSON() ([]byte, error) {
	switch {
	case p == "":
		return []byte("null"), nil
	case json.Valid([]byte(p)):
		return []byte(p), nil
	default:
		return json.Marshal(string(p))
	}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = ""
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*p = Price(buf.String())
	return nil
}

// UnmarshalText is used for form bodies, where every value is a string.
func (p *Price) UnmarshalText(text []byte) error {
	*p = StringPrice(string(text))
	return nil
}

func (p Price) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *Price) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = ""
	case string:
		*p = Price(v)
	case []byte:
		*p = Price(v)
	default:
		return fmt.Errorf("scan price from %T", src)
	}
	return nil
}
