package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KLineData is the daily payload handed over by the fetch collaborator.
// Each kline is "date,open,close,high,low,volume".
type KLineData struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	KLines []string `json:"klines"`
}

// TrendsData is the intraday payload. Each trend is "YYYY-MM-DD HH:mm,price,volume,avgPrice".
type TrendsData struct {
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	PrePrice PriceText `json:"prePrice"`
	Trends   []string  `json:"trends"`
}

// Envelope wraps upstream responses as {"data": {...}}.
type Envelope[T any] struct {
	Data *T `json:"data"`
}

// PriceText keeps a price the way upstream sent it, either a JSON string or number.
type PriceText string

func (p *PriceText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*p = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("price text: %w", err)
		}
		*p = PriceText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("price text: %w", err)
	}
	*p = PriceText(n.String())
	return nil
}
