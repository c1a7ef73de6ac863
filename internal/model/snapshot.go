package model

import "time"

// Snapshot is the latest reading of every indicator for one symbol.
type Snapshot struct {
	Symbol string
	Name   string
	Code   string
	// Date is the label of the last daily bar.
	Date  string
	Close Value
	MA    map[string]Value
	DIF   Value
	DEA   Value
	MACD  Value
	K     Value
	D     Value
	J     Value

	// Intraday fields stay Missing when no session data was available.
	LastPrice  Value
	AvgPrice   Value
	PrePrice   Value
	ChangeRate Value

	TakenAt time.Time
}
