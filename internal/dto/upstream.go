package dto

import (
	"bytes"
	"encoding/json"
)

// UpstreamOrder is one raw record as the upstream /data endpoint serves it.
// Identifier and total fields arrive as either JSON strings or numbers
// depending on the feed, so they decode through FlexString. The categories
// key is plural on the wire but carries a single label.
type UpstreamOrder struct {
	OrderID      FlexString `json:"order_id"`
	OrderDate    string     `json:"order_date"`
	CustomerID   FlexString `json:"customer_id"`
	ProductNames string     `json:"product_names"`
	Categories   string     `json:"categories"`
	Total        FlexString `json:"total"`
}

// FlexString decodes a JSON string, number, or null into a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }
