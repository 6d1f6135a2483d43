package model

import (
	"encoding/json"
	"time"
)

// TimeLayout is the wire format for order timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// OrderLine is one line entry of a confirmed order, snapshotted from the
// cart at confirmation time.
type OrderLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (l OrderLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Order is a confirmed cart. Delivered starts false and flips to true
// exactly once; orders are never deleted.
type Order struct {
	ID          int64       `json:"id"`
	TableNumber int         `json:"table_number"`
	Timestamp   time.Time   `json:"timestamp"`
	Items       []OrderLine `json:"items"`
	Total       float64     `json:"total"`
	Delivered   bool        `json:"delivered"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Timestamp: o.Timestamp.Format(TimeLayout),
		Alias:     (*Alias)(&o),
	})
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type Alias Order
	aux := &struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{Alias: (*Alias)(o)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	if aux.Timestamp != "" {
		t, err := time.Parse(TimeLayout, aux.Timestamp)
		if err != nil {
			return err
		}
		o.Timestamp = t
	}
	return nil
}
