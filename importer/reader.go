// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// column headers of the play store export
const (
	ColAppName          = "App Name"
	ColAppID            = "App Id"
	ColCategory         = "Category"
	ColRating           = "Rating"
	ColRatingCount      = "Rating Count"
	ColInstalls         = "Installs"
	ColMinInstalls      = "Minimum Installs"
	ColMaxInstalls      = "Maximum Installs"
	ColFree             = "Free"
	ColPrice            = "Price"
	ColCurrency         = "Currency"
	ColSize             = "Size"
	ColMinAndroid       = "Minimum Android"
	ColDeveloperID      = "Developer Id"
	ColDeveloperWebsite = "Developer Website"
	ColDeveloperEmail   = "Developer Email"
	ColReleased         = "Released"
	ColLastUpdated      = "Last Updated"
	ColContentRating    = "Content Rating"
	ColPrivacyPolicy    = "Privacy Policy"
	ColAdSupported      = "Ad Supported"
	ColInAppPurchases   = "In App Purchases"
	ColEditorsChoice    = "Editors Choice"
	ColScrapedTime      = "Scraped Time"
)

var ErrEmptyFile = errors.New("csv file has no header row")

// columnIndex maps a header to its position, the first occurrence of a header wins.
// All rows of a file share one index.
type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	index := make(columnIndex, len(header))
	for i, column := range header {
		if _, ok := index[column]; !ok {
			index[column] = i
		}
	}
	return index
}

// RawRow is a single csv record
type RawRow struct {
	Line   int
	Record []string
	index  columnIndex
}

// At returns the i-th field, or an empty string if the record is shorter
func (r RawRow) At(i int) string {
	if i < 0 || i >= len(r.Record) {
		return ""
	}
	return r.Record[i]
}

// Get returns the value of the column, or an empty string if the column is missing
func (r RawRow) Get(column string) string {
	i, ok := r.index[column]
	if !ok {
		return ""
	}
	return r.At(i)
}

type readCloser struct {
	io.Reader
	closer io.Closer
}

func (r readCloser) Close() error {
	return r.closer.Close()
}

// Open opens a csv file. Files ending with .xz are decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xz") {
		return f, nil
	}

	r, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not read xz stream of %s: %w", path, err)
	}
	return readCloser{Reader: r, closer: f}, nil
}

// ReadCSV reads the header and all records. Records with a different number of fields than the
// header are kept, missing fields read as empty.
func ReadCSV(r io.Reader) ([]string, []RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrEmptyFile
		}
		return nil, nil, fmt.Errorf("could not read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := newColumnIndex(header)
	rows := []RawRow{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("could not read csv record: %w", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, RawRow{Line: line, Record: record, index: index})
	}
	return header, rows, nil
}

// ReadFile is Open followed by ReadCSV
func ReadFile(path string) ([]string, []RawRow, error) {
	f, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
