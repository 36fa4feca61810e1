package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/save"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

func TestEntryToJSON(t *testing.T) {
	saved := time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))
	got := EntryToJSON(save.Entry{ID: "id-1", Label: "opening", SavedAt: saved})
	testutil.AssertEqual(t, got, JSONEntry{ID: "id-1", Label: "opening", SavedAt: "2024-03-01T11:30:00Z"})
}

func TestAuditToJSON(t *testing.T) {
	tests := []struct {
		name string
		res  worker.ProcessResult
		want JSONAudit
	}{
		{
			name: "audited",
			res: worker.ProcessResult{
				ID:          "b",
				ToMove:      chess.Black,
				Status:      engine.Check,
				Moves:       3,
				FEN:         "8/8/8/8/8/8/8/8 b - - 0 1",
				Issues:      []string{"no White King"},
				DuplicateOf: "a",
			},
			want: JSONAudit{
				ID:          "b",
				ToMove:      "Black",
				Status:      "Check",
				Moves:       3,
				FEN:         "8/8/8/8/8/8/8/8 b - - 0 1",
				Issues:      []string{"no White King"},
				DuplicateOf: "a",
			},
		},
		{
			name: "failed",
			res:  worker.ProcessResult{ID: "c", Moves: 7, Error: fmt.Errorf("no board")},
			want: JSONAudit{ID: "c", Error: "no board"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, AuditToJSON(tt.res), tt.want)
		})
	}
}

func TestSummaryToJSON(t *testing.T) {
	report := &worker.AuditReport{
		Results:    make([]worker.ProcessResult, 5),
		Unique:     3,
		Duplicates: 1,
	}
	testutil.AssertEqual(t, SummaryToJSON(report), &JSONSummary{Audited: 5, Unique: 3, Duplicates: 1})
}

func TestWrite(t *testing.T) {
	doc := &JSONOutput{
		Entries: []JSONEntry{{ID: "a", Label: "start", SavedAt: "2024-03-01T11:30:00Z"}},
		Audits:  []JSONAudit{{ID: "a", ToMove: "White", Status: "Ongoing", Moves: 20}},
		Summary: &JSONSummary{Audited: 1, Unique: 1},
	}
	var buf bytes.Buffer
	testutil.AssertNoError(t, Write(&buf, doc))
	testutil.AssertContains(t, buf.String(), "\n  \"entries\": [")
	testutil.AssertContains(t, buf.String(), `"moves": 20`)

	var back JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &back))
	testutil.AssertEqual(t, &back, doc)
}

func TestWriteOmitsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, Write(&buf, &JSONOutput{}))
	testutil.AssertEqual(t, buf.String(), "{}\n")
}
