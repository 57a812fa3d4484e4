package importer

import (
	"strconv"
	"strings"
)

// ColumnProfile summarizes one csv column
type ColumnProfile struct {
	Name    string `json:"name" yaml:"name"`
	Missing int    `json:"missing" yaml:"missing"`
	Type    string `json:"type" yaml:"type"`
}

type Profile struct {
	TotalRecords int             `json:"total_records" yaml:"total_records"`
	Columns      []ColumnProfile `json:"columns" yaml:"columns"`
}

// inferred column kinds, ordered from the narrowest to the widest
const (
	kindUnknown = iota
	kindBool
	kindInt
	kindFloat
	kindString
)

var kindNames = map[int]string{
	kindUnknown: "float64", // a column without any value
	kindBool:    "bool",
	kindInt:     "int64",
	kindFloat:   "float64",
	kindString:  "object",
}

func kindOf(v string) int {
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return kindInt
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return kindFloat
	}
	switch strings.ToLower(v) {
	case "true", "false":
		return kindBool
	}
	return kindString
}

func widen(current, next int) int {
	if current == kindUnknown {
		return next
	}
	if current == next {
		return current
	}
	// bool mixed with anything else is not a numeric column
	if current == kindBool || next == kindBool {
		return kindString
	}
	return max(current, next)
}

// ProfileRows counts the missing values and infers a type per column
func ProfileRows(header []string, rows []RawRow) Profile {
	kinds := make([]int, len(header))
	columns := make([]ColumnProfile, len(header))
	for i, name := range header {
		columns[i].Name = name
	}

	for _, row := range rows {
		for i := range header {
			v := strings.TrimSpace(row.At(i))
			if v == "" {
				columns[i].Missing++
				continue
			}
			kinds[i] = widen(kinds[i], kindOf(v))
		}
	}

	for i := range columns {
		columns[i].Type = kindNames[kinds[i]]
	}
	return Profile{
		TotalRecords: len(rows),
		Columns:      columns,
	}
}
