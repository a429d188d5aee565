package counsel

import (
	"encoding/json"
	"strconv"
)

// FlexID is a numeric id that tolerates being sent as a JSON string. Form
// controls on the editing side carry string-typed ids; the reconciler needs
// real numbers before the bulk replace.
type FlexID struct {
	Value uint64
	Valid bool
}

// UnmarshalJSON accepts a JSON number or a numeric string. Anything else
// leaves the id marked invalid rather than failing the whole request.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value = n
		f.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseUint(s, 10, 64); err == nil {
			f.Value = parsed
			f.Valid = true
			return nil
		}
	}

	f.Valid = false
	return nil
}

// RawEntry is a working-set entry as received on the wire, before coercion.
type RawEntry struct {
	LawFirmID  FlexID  `json:"lawFirmId"`
	AttorneyID *FlexID `json:"attorneyId"`
}

// Validate coerces raw entries to numeric ids immediately before the bulk
// replace. Entries whose lawFirmId fails to parse are dropped; a null
// attorneyId passes through unchanged. It does not deduplicate and does not
// strip a firm-only entry that coexists with attorney entries for the same
// firm: the working set is submitted as the user left it.
func Validate(raw []RawEntry) []Entry {
	out := make([]Entry, 0, len(raw))
	for _, r := range raw {
		if !r.LawFirmID.Valid {
			continue
		}
		entry := Entry{LawFirmID: r.LawFirmID.Value}
		if r.AttorneyID != nil {
			if !r.AttorneyID.Valid {
				continue
			}
			id := r.AttorneyID.Value
			entry.AttorneyID = &id
		}
		out = append(out, entry)
	}
	return out
}
