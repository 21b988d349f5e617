package table_test

import (
	"testing"

	"github.com/katalvlaran/lvfit/table"
	"github.com/stretchr/testify/assert"
)

// TestParseHeader covers every accepted shape and every fallback.
func TestParseHeader(t *testing.T) {
	abc := table.Header{"A", "B", "C"}
	xyz := table.Header{"X", "Y", "Z"}

	cases := []struct {
		name string
		in   any
		want table.Header
	}{
		{"ampersand", "A&B&C", abc},
		{"ampersand spaced", " A & B & C ", abc},
		{"comma", "A,B,C", abc},
		{"ampersand wins over comma", "A,1&B&C", table.Header{"A,1", "B", "C"}},
		{"slice", []string{"X", "Y", "Z"}, xyz},
		{"array", [3]string{"X", "Y", "Z"}, xyz},
		{"header", xyz, xyz},
		{"nil", nil, table.DefaultHeader},
		{"two fields", "A,B", table.DefaultHeader},
		{"four fields", "A&B&C&D", table.DefaultHeader},
		{"short slice", []string{"X", "Y"}, table.DefaultHeader},
		{"int", 42, table.DefaultHeader},
		{"zero header", table.Header{}, table.DefaultHeader},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.ParseHeader(tc.in))
		})
	}
}

func TestHeader_Markup(t *testing.T) {
	assert.Equal(t, "Param & Value & Error", table.DefaultHeader.Markup())
}
