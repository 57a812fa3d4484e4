package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteRejected writes the rejected records as csv: line, reason and the original columns
func WriteRejected(w io.Writer, header []string, rejected []Rejection) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(append([]string{"line", "reason"}, header...)); err != nil {
		return err
	}
	for _, r := range rejected {
		if err := writer.Write(append([]string{strconv.Itoa(r.Line), r.Reason}, r.Record...)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func WriteRejectedFile(path string, header []string, rejected []Rejection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create rejected rows report: %w", err)
	}
	defer f.Close()
	return WriteRejected(f, header, rejected)
}
