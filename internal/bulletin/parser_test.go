package bulletin

import (
	"testing"

	"github.com/sggtools/boapi/internal/domain"
	"github.com/sggtools/boapi/internal/upstream"
)

const origin = "https://www.sgg.gov.ma"

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  upstream.Record
		want domain.Bulletin
	}{
		{
			name: "complete record",
			rec: upstream.Record{
				BoID:   "101",
				BoNum:  "7200",
				BoDate: "/Date(1687392000000)/",
				BoURL:  "/BO/7200.pdf",
			},
			want: domain.Bulletin{
				ID:          "101",
				Number:      "7200",
				Date:        "2023-06-22T00:00:00Z",
				DocumentURL: "https://www.sgg.gov.ma/BO/7200.pdf",
			},
		},
		{
			name: "unparsable date becomes unknown",
			rec: upstream.Record{
				BoID:   "102",
				BoNum:  "7201",
				BoDate: "not a date",
				BoURL:  "/BO/7201.pdf",
			},
			want: domain.Bulletin{
				ID:          "102",
				Number:      "7201",
				Date:        domain.DateUnknown,
				DocumentURL: "https://www.sgg.gov.ma/BO/7201.pdf",
			},
		},
		{
			name: "absolute url passes through",
			rec: upstream.Record{
				BoDate: "/Date(0)/",
				BoURL:  "https://cdn.example/BO.pdf",
			},
			want: domain.Bulletin{
				Date:        "1970-01-01T00:00:00Z",
				DocumentURL: "https://cdn.example/BO.pdf",
			},
		},
		{
			name: "empty record still yields an item",
			rec:  upstream.Record{},
			want: domain.Bulletin{
				Date:        domain.DateUnknown,
				DocumentURL: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRecord(tt.rec, origin)
			if got != tt.want {
				t.Errorf("ParseRecord() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRecordsPreservesOrder(t *testing.T) {
	records := []upstream.Record{
		{BoNum: "7200", BoDate: "/Date(0)/"},
		{BoNum: "7199", BoDate: "/Date(0)/"},
		{BoNum: "7198", BoDate: "/Date(0)/"},
	}

	items := ParseRecords(records, origin)
	if len(items) != 3 {
		t.Fatalf("ParseRecords() returned %d items, want 3", len(items))
	}
	for i, want := range []string{"7200", "7199", "7198"} {
		if items[i].Number.String() != want {
			t.Errorf("items[%d].Number = %s, want %s (upstream order)", i, items[i].Number, want)
		}
	}
}
