package nmasim

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/spaolacci/murmur3"
)

// ArmRecord is one row of a long-format dataset: a single treatment arm
// of a single study. Field names on the wire follow the column naming
// used by network meta-analysis tooling.
type ArmRecord struct {
	StudyID     int `json:"study.id" yaml:"study.id"`
	TreatmentID int `json:"treatment.id" yaml:"treatment.id"`
	SampleSize  int `json:"sample.size" yaml:"sample.size"`
	Response    int `json:"response" yaml:"response"`
}

// Provenance records how a dataset was produced.
type Provenance struct {
	// RunID uniquely identifies the Generate call that produced the
	// dataset, independent of seeding.
	RunID string `json:"run_id" yaml:"run_id"`

	// Seed is the seed passed to WithSeed. It is meaningful only when
	// Seeded is true.
	Seed   int64 `json:"seed" yaml:"seed"`
	Seeded bool  `json:"seeded" yaml:"seeded"`

	// Parameters echoes the configuration of the run.
	Parameters Parameters `json:"parameters" yaml:"parameters"`

	// GeneratedAt is the UTC completion time of the run.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// Dataset is a collection of simulated arm records plus the provenance of
// the run that produced them. Datasets are immutable once built.
type Dataset struct {
	rows []ArmRecord
	prov Provenance
}

// NewDataset wraps rows in a Dataset after checking them for structural
// problems. The rows are copied; the caller's slice is not retained. A
// dataset built this way carries empty provenance.
func NewDataset(rows []ArmRecord) (*Dataset, error) {
	if issues := CheckRows(rows); len(issues) > 0 {
		return nil, fmt.Errorf("invalid rows: %s (%d issue(s) total)", issues[0], len(issues))
	}
	return &Dataset{rows: append([]ArmRecord(nil), rows...)}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Row returns the record at index i.
func (d *Dataset) Row(i int) ArmRecord { return d.rows[i] }

// Rows returns a copy of all rows in order.
func (d *Dataset) Rows() []ArmRecord {
	return append([]ArmRecord(nil), d.rows...)
}

// Studies returns the number of distinct studies in the dataset.
func (d *Dataset) Studies() int {
	seen := make(map[int]struct{})
	for _, r := range d.rows {
		seen[r.StudyID] = struct{}{}
	}
	return len(seen)
}

// ArmsOf returns the rows of one study in their original order, or nil
// when the study is absent.
func (d *Dataset) ArmsOf(study int) []ArmRecord {
	var arms []ArmRecord
	for _, r := range d.rows {
		if r.StudyID == study {
			arms = append(arms, r)
		}
	}
	return arms
}

// Provenance returns the run metadata attached at generation time.
func (d *Dataset) Provenance() Provenance { return d.prov }

// Fingerprint returns a 64-bit murmur3 hash over the rows in order.
// Equal row sequences produce equal fingerprints, so reproducibility
// checks reduce to comparing two integers.
func (d *Dataset) Fingerprint() uint64 {
	h := murmur3.New64()
	var buf [8]byte
	for _, r := range d.rows {
		for _, v := range [4]int{r.StudyID, r.TreatmentID, r.SampleSize, r.Response} {
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

// Summary describes a dataset's shape and outcome totals.
type Summary struct {
	Studies      int     `json:"studies"`
	Arms         int     `json:"arms"`
	MinArms      int     `json:"min_arms"`  // fewest arms in any study
	MaxArms      int     `json:"max_arms"`  // most arms in any study
	MeanArms     float64 `json:"mean_arms"` // arms per study
	Subjects     int     `json:"subjects"`  // total enrollment
	Responses    int     `json:"responses"` // total responders
	ResponseRate float64 `json:"response_rate"`

	// TreatmentUse counts the studies each treatment appears in, keyed
	// by treatment ID.
	TreatmentUse map[int]int `json:"treatment_use"`
}

// Summary computes descriptive aggregates in one pass over the rows.
func (d *Dataset) Summary() Summary {
	s := Summary{TreatmentUse: make(map[int]int)}
	if len(d.rows) == 0 {
		return s
	}
	armCount := make(map[int]int)
	for _, r := range d.rows {
		armCount[r.StudyID]++
		s.Subjects += r.SampleSize
		s.Responses += r.Response
		s.TreatmentUse[r.TreatmentID]++
	}
	s.Arms = len(d.rows)
	s.Studies = len(armCount)
	first := true
	for _, c := range armCount {
		if first || c < s.MinArms {
			s.MinArms = c
		}
		if c > s.MaxArms {
			s.MaxArms = c
		}
		first = false
	}
	s.MeanArms = float64(s.Arms) / float64(s.Studies)
	if s.Subjects > 0 {
		s.ResponseRate = float64(s.Responses) / float64(s.Subjects)
	}
	return s
}

// RowIssue describes a structural defect found in a slice of arm
// records.
type RowIssue struct {
	Row   int // index into the slice
	Field string
	Issue string
}

func (i RowIssue) String() string {
	return fmt.Sprintf("row %d: %s: %s", i.Row, i.Field, i.Issue)
}

// CheckRows validates rows against the structural invariants of a
// long-format dataset: positive identifiers, responses within sample
// size, contiguous study blocks of at least two arms, and no repeated
// treatment within a study. The returned slice is empty when rows are
// well formed.
func CheckRows(rows []ArmRecord) []RowIssue {
	var issues []RowIssue
	for i, r := range rows {
		if r.StudyID < 1 {
			issues = append(issues, RowIssue{Row: i, Field: "study.id",
				Issue: fmt.Sprintf("must be positive, got %d", r.StudyID)})
		}
		if r.TreatmentID < 1 {
			issues = append(issues, RowIssue{Row: i, Field: "treatment.id",
				Issue: fmt.Sprintf("must be positive, got %d", r.TreatmentID)})
		}
		if r.SampleSize < 1 {
			issues = append(issues, RowIssue{Row: i, Field: "sample.size",
				Issue: fmt.Sprintf("must be positive, got %d", r.SampleSize)})
		}
		if r.Response < 0 || r.Response > r.SampleSize {
			issues = append(issues, RowIssue{Row: i, Field: "response",
				Issue: fmt.Sprintf("must be between 0 and sample size %d, got %d", r.SampleSize, r.Response)})
		}
	}

	started := false
	var current, blockStart int
	closed := make(map[int]bool)
	arms := make(map[int]int)
	closeBlock := func(end int) {
		if n := end - blockStart; n < 2 {
			issues = append(issues, RowIssue{Row: blockStart, Field: "study.id",
				Issue: fmt.Sprintf("study %d has %d arm(s), need at least 2", current, n)})
		}
	}
	for i, r := range rows {
		if !started || r.StudyID != current {
			if started {
				closeBlock(i)
				closed[current] = true
			}
			if closed[r.StudyID] {
				issues = append(issues, RowIssue{Row: i, Field: "study.id",
					Issue: fmt.Sprintf("study %d is split across non-adjacent rows", r.StudyID)})
			}
			started = true
			current = r.StudyID
			blockStart = i
			arms = make(map[int]int)
		}
		if first, dup := arms[r.TreatmentID]; dup {
			issues = append(issues, RowIssue{Row: i, Field: "treatment.id",
				Issue: fmt.Sprintf("treatment %d repeated in study %d (first at row %d)", r.TreatmentID, r.StudyID, first)})
		} else {
			arms[r.TreatmentID] = i
		}
	}
	if started {
		closeBlock(len(rows))
	}
	return issues
}
