// Package counsel maintains the working set of law-firm/attorney entries a
// user edits before replacing a deal's counsel for one role in bulk.
package counsel

// Entry is one element of the working set. A nil AttorneyID means the firm
// as a whole with no specific attorney designated.
type Entry struct {
	LawFirmID  uint64  `json:"law_firm_id"`
	AttorneyID *uint64 `json:"attorney_id"`
}

// Group is the read-side projection of a firm's entries.
type Group struct {
	LawFirmID   uint64   `json:"law_firm_id"`
	AttorneyIDs []uint64 `json:"attorney_ids"`
	FirmOnly    bool     `json:"firm_only"`
}

func sameAttorney(a, b *Entry) bool {
	if a.AttorneyID == nil || b.AttorneyID == nil {
		return a.AttorneyID == nil && b.AttorneyID == nil
	}
	return *a.AttorneyID == *b.AttorneyID
}

// Contains reports whether an exact {firm, attorney} pair is present.
func Contains(entries []Entry, firmID uint64, attorneyID *uint64) bool {
	candidate := Entry{LawFirmID: firmID, AttorneyID: attorneyID}
	for i := range entries {
		if entries[i].LawFirmID == firmID && sameAttorney(&entries[i], &candidate) {
			return true
		}
	}
	return false
}

// Add appends a {firm, attorney} pair unless the exact pair already exists.
// It deliberately does not remove a pre-existing firm-only entry for the
// same firm; that cleanup happens only on removal. The input is not mutated.
func Add(entries []Entry, firmID uint64, attorneyID *uint64) []Entry {
	if Contains(entries, firmID, attorneyID) {
		return entries
	}
	out := make([]Entry, len(entries), len(entries)+1)
	copy(out, entries)
	return append(out, Entry{LawFirmID: firmID, AttorneyID: attorneyID})
}

// Remove drops the entry at index. Removing a firm's last attorney entry
// leaves behind exactly one firm-only entry so the firm is never silently
// dropped. Removing a firm-only entry drops the firm entirely, attorneys
// included. An out-of-range index is a no-op.
func Remove(entries []Entry, index int) []Entry {
	if index < 0 || index >= len(entries) {
		return entries
	}

	target := entries[index]
	if target.AttorneyID == nil {
		return RemoveFirm(entries, target.LawFirmID)
	}

	out := make([]Entry, 0, len(entries)-1)
	out = append(out, entries[:index]...)
	out = append(out, entries[index+1:]...)

	var hasAttorney, hasFirmOnly bool
	for _, e := range out {
		if e.LawFirmID != target.LawFirmID {
			continue
		}
		if e.AttorneyID != nil {
			hasAttorney = true
		} else {
			hasFirmOnly = true
		}
	}
	if !hasAttorney && !hasFirmOnly {
		out = append(out, Entry{LawFirmID: target.LawFirmID})
	}
	return out
}

// RemoveFirm drops every entry for a firm, firm-only and attorney alike.
func RemoveFirm(entries []Entry, firmID uint64) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.LawFirmID != firmID {
			out = append(out, e)
		}
	}
	return out
}

// GroupByFirm projects the working set into one group per firm, for display.
func GroupByFirm(entries []Entry) map[uint64]Group {
	groups := make(map[uint64]Group)
	for _, e := range entries {
		g := groups[e.LawFirmID]
		g.LawFirmID = e.LawFirmID
		if e.AttorneyID != nil {
			g.AttorneyIDs = append(g.AttorneyIDs, *e.AttorneyID)
		} else {
			g.FirmOnly = true
		}
		groups[e.LawFirmID] = g
	}
	return groups
}
