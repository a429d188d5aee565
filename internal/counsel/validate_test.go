package counsel

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value uint64
		valid bool
	}{
		{"number", `42`, 42, true},
		{"numeric string", `"42"`, 42, true},
		{"empty string", `""`, 0, false},
		{"non-numeric string", `"abc"`, 0, false},
		{"negative number", `-1`, 0, false},
		{"boolean", `true`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexID
			err := json.Unmarshal([]byte(tt.input), &id)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, id.Valid)
			if tt.valid {
				assert.Equal(t, tt.value, id.Value)
			}
		})
	}
}

func TestValidate_CoercesStringIDs(t *testing.T) {
	payload := `[
		{"lawFirmId": "1", "attorneyId": "10"},
		{"lawFirmId": 2, "attorneyId": null},
		{"lawFirmId": "3"}
	]`

	var raw []RawEntry
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	got := Validate(raw)

	want := []Entry{
		{LawFirmID: 1, AttorneyID: uptr(10)},
		{LawFirmID: 2},
		{LawFirmID: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("validated entries mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_DropsInvalidLawFirmID(t *testing.T) {
	payload := `[
		{"lawFirmId": "oops", "attorneyId": 10},
		{"lawFirmId": 2, "attorneyId": 20}
	]`

	var raw []RawEntry
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	got := Validate(raw)

	want := []Entry{{LawFirmID: 2, AttorneyID: uptr(20)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("validated entries mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_DropsInvalidAttorneyID(t *testing.T) {
	payload := `[{"lawFirmId": 1, "attorneyId": "oops"}]`

	var raw []RawEntry
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	assert.Empty(t, Validate(raw))
}

func TestValidate_DoesNotDeduplicate(t *testing.T) {
	raw := []RawEntry{
		{LawFirmID: FlexID{Value: 1, Valid: true}},
		{LawFirmID: FlexID{Value: 1, Valid: true}, AttorneyID: &FlexID{Value: 10, Valid: true}},
		{LawFirmID: FlexID{Value: 1, Valid: true}, AttorneyID: &FlexID{Value: 10, Valid: true}},
	}

	// The set is submitted exactly as the user left it, duplicates and
	// stale firm-only entries included.
	assert.Len(t, Validate(raw), 3)
}
