// Package table renders datasets as tabular interchange formats: Arrow
// record batches for columnar consumers, CSV and JSON for everything
// else.
//
// Column names follow the R convention used by network meta-analysis
// tooling, so exported tables drop straight into existing analysis
// scripts.
package table

import (
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/nvandessel/nmasim"
)

// Column names of the long format.
const (
	ColStudyID     = "study.id"
	ColTreatmentID = "treatment.id"
	ColSampleSize  = "sample.size"
	ColResponse    = "response"
)

// Schema returns the Arrow schema of the long format: four non-nullable
// int64 columns.
func Schema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: ColStudyID, Type: arrow.PrimitiveTypes.Int64},
		{Name: ColTreatmentID, Type: arrow.PrimitiveTypes.Int64},
		{Name: ColSampleSize, Type: arrow.PrimitiveTypes.Int64},
		{Name: ColResponse, Type: arrow.PrimitiveTypes.Int64},
	}, nil)
}

// Record builds an Arrow record batch holding every row of ds, allocated
// from mem. A nil allocator selects the default. The caller owns the
// returned record and must Release it.
func Record(mem memory.Allocator, ds *nmasim.Dataset) arrow.Record {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	b := array.NewRecordBuilder(mem, Schema())
	defer b.Release()

	study := b.Field(0).(*array.Int64Builder)
	treatment := b.Field(1).(*array.Int64Builder)
	size := b.Field(2).(*array.Int64Builder)
	response := b.Field(3).(*array.Int64Builder)

	n := ds.Len()
	study.Reserve(n)
	treatment.Reserve(n)
	size.Reserve(n)
	response.Reserve(n)

	for i := 0; i < n; i++ {
		r := ds.Row(i)
		study.Append(int64(r.StudyID))
		treatment.Append(int64(r.TreatmentID))
		size.Append(int64(r.SampleSize))
		response.Append(int64(r.Response))
	}
	return b.NewRecord()
}
