package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseDayList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    DayList
		wantErr bool
	}{
		{
			name: "Should parse a plain list",
			raw:  `["MON","WED","FRI"]`,
			want: DayList{"MON", "WED", "FRI"},
		},
		{
			name: "Should drop duplicates keeping first occurrence",
			raw:  `["MON","WED","MON"]`,
			want: DayList{"MON", "WED"},
		},
		{
			name: "Should parse an empty list",
			raw:  `[]`,
			want: DayList{},
		},
		{
			name:    "Should fail on malformed payload",
			raw:     `["MON",`,
			wantErr: true,
		},
		{
			name:    "Should fail on a non-array payload",
			raw:     `"MON"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDayList(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_DayList_Encode(t *testing.T) {
	assert.Equal(t, `["MON","WED"]`, DayList{"MON", "WED"}.Encode())
	assert.Equal(t, `[]`, DayList{}.Encode())
}
