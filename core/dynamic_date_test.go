package core

import (
	"testing"
	"time"
)

func TestParseDynamicDate(t *testing.T) {
	base := time.Date(2023, 5, 15, 10, 0, 0, 0, time.UTC)
	leap := time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expression string
		baseTime   time.Time
		want       string
		wantErr    bool
	}{
		{name: "Static String", expression: "2023-01-01", baseTime: base, want: "2023-01-01"},
		{name: "Today", expression: "$date:day:day:0", baseTime: base, want: "2023-05-15"},
		{name: "Yesterday", expression: "$date:day:day:-1", baseTime: base, want: "2023-05-14"},
		{name: "Last Month", expression: "$date:month:month:-1", baseTime: base, want: "2023-04"},
		{name: "Next Year", expression: "$date:year:year:1", baseTime: base, want: "2024"},
		{name: "DateTime", expression: "$date:datetime:day:0", baseTime: base, want: "2023-05-15 10:00:00"},
		{name: "Compact", expression: "$date:compact:day:1", baseTime: base, want: "20230516"},
		{name: "Unpadded Month", expression: "$date:m:day:0", baseTime: base, want: "5"},
		{name: "Unpadded Day", expression: "$date:d:day:-10", baseTime: base, want: "5"},
		{name: "Leap Day Plus Year", expression: "$date:day:year:1", baseTime: leap, want: "2025-03-01"},

		{name: "Too Short", expression: "$date:day:day", baseTime: base, wantErr: true},
		{name: "Bad Offset", expression: "$date:day:day:abc", baseTime: base, wantErr: true},
		{name: "Unsupported Unit", expression: "$date:day:week:1", baseTime: base, wantErr: true},
		{name: "Unsupported Format", expression: "$date:yyyy:day:0", baseTime: base, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDynamicDate(tt.expression, tt.baseTime)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDynamicDate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseDynamicDate() got = %v, want %v", got, tt.want)
			}
		})
	}
}
