package table

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/nvandessel/nmasim"
)

// WriteCSV writes ds to w as comma-separated rows under a header line.
func WriteCSV(w io.Writer, ds *nmasim.Dataset) error {
	cw := csv.NewWriter(w)
	header := []string{ColStudyID, ColTreatmentID, ColSampleSize, ColResponse}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < ds.Len(); i++ {
		r := ds.Row(i)
		record := []string{
			strconv.Itoa(r.StudyID),
			strconv.Itoa(r.TreatmentID),
			strconv.Itoa(r.SampleSize),
			strconv.Itoa(r.Response),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes ds to w as a JSON array of row objects keyed by the
// column names. An empty dataset encodes as an empty array.
func WriteJSON(w io.Writer, ds *nmasim.Dataset) error {
	rows := ds.Rows()
	if rows == nil {
		rows = []nmasim.ArmRecord{}
	}
	return json.NewEncoder(w).Encode(rows)
}
