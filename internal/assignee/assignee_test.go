package assignee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uptr(v uint64) *uint64 {
	return &v
}

func testDirectory() Directory {
	return NewDirectory(
		[]UserRecord{
			{ID: 7, FullName: "Jordan Vale", Initials: "JV", AvatarColor: "#2563eb"},
		},
		[]CustomRecord{
			{ID: 3, Name: "Acme Escrow Agent"},
		},
		[]FirmRecord{
			{ID: 5, Name: "Harwood & Gray LLP", Specialty: "Fund Formation"},
		},
		[]AttorneyRecord{
			{ID: 99, Name: "A. Smith", Position: "Partner", LawFirmID: 5, Initials: "AS", AvatarColor: "#db2777"},
		},
	)
}

func TestResolve_User(t *testing.T) {
	dir := testDirectory()

	resolved := Resolve(Ref{AssigneeID: uptr(7)}, dir)

	assert.NotNil(t, resolved)
	assert.Equal(t, KindUser, resolved.Kind)
	assert.Equal(t, uint64(7), resolved.ID)
	assert.Equal(t, "Jordan Vale", resolved.Label)
	assert.True(t, resolved.Known)
}

func TestResolve_CustomAssignee(t *testing.T) {
	dir := testDirectory()

	resolved := Resolve(Ref{CustomAssigneeID: uptr(3)}, dir)

	assert.NotNil(t, resolved)
	assert.Equal(t, KindCustom, resolved.Kind)
	assert.Equal(t, "Acme Escrow Agent", resolved.Label)
}

func TestResolve_FirmWithoutAttorney(t *testing.T) {
	dir := testDirectory()

	resolved := Resolve(Ref{LawFirmID: uptr(5)}, dir)

	assert.NotNil(t, resolved)
	assert.Equal(t, KindLawFirm, resolved.Kind)
	assert.Equal(t, "Harwood & Gray LLP", resolved.Label)
	assert.Equal(t, "Fund Formation", resolved.Specialty)
}

func TestResolve_AttorneyWithFirmPair(t *testing.T) {
	dir := testDirectory()

	// AttorneyID non-nil implies LawFirmID is also set; the pair resolves
	// to the attorney, not the firm.
	resolved := Resolve(Ref{LawFirmID: uptr(5), AttorneyID: uptr(99)}, dir)

	assert.NotNil(t, resolved)
	assert.Equal(t, KindAttorney, resolved.Kind)
	assert.Equal(t, "A. Smith", resolved.Label)
	assert.Equal(t, uint64(5), resolved.LawFirmID)
	assert.Equal(t, "Partner", resolved.Position)
}

func TestResolve_Precedence(t *testing.T) {
	dir := testDirectory()

	// Should not occur given the exclusivity invariant, but a populated
	// user slot wins over everything else.
	resolved := Resolve(Ref{
		AssigneeID:       uptr(7),
		CustomAssigneeID: uptr(3),
		LawFirmID:        uptr(5),
		AttorneyID:       uptr(99),
	}, dir)

	assert.NotNil(t, resolved)
	assert.Equal(t, KindUser, resolved.Kind)
}

func TestResolve_Empty(t *testing.T) {
	dir := testDirectory()

	assert.Nil(t, Resolve(Ref{}, dir))
	assert.Equal(t, "Unassigned", LabelFor(Ref{}, dir))
}

func TestResolve_UnknownIDs(t *testing.T) {
	dir := testDirectory()

	tests := []struct {
		name  string
		ref   Ref
		kind  Kind
		id    uint64
		label string
	}{
		{"unknown user", Ref{AssigneeID: uptr(404)}, KindUser, 404, "Unknown User"},
		{"unknown custom", Ref{CustomAssigneeID: uptr(404)}, KindCustom, 404, "Unknown Assignee"},
		{"unknown firm", Ref{LawFirmID: uptr(404)}, KindLawFirm, 404, "Unknown Law Firm"},
		{"unknown attorney", Ref{LawFirmID: uptr(5), AttorneyID: uptr(404)}, KindAttorney, 404, "Unknown Attorney"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Resolve(tt.ref, dir)
			assert.NotNil(t, resolved)
			assert.Equal(t, tt.kind, resolved.Kind)
			assert.Equal(t, tt.id, resolved.ID)
			assert.Equal(t, tt.label, resolved.Label)
			assert.False(t, resolved.Known)
		})
	}
}

func TestResolve_UnknownAttorneyKeepsFirm(t *testing.T) {
	dir := testDirectory()

	resolved := Resolve(Ref{LawFirmID: uptr(5), AttorneyID: uptr(404)}, dir)

	assert.NotNil(t, resolved)
	assert.Equal(t, uint64(5), resolved.LawFirmID)
}

func TestApplySelection_RoundTrip(t *testing.T) {
	dir := testDirectory()

	selections := []*Assignee{
		{Kind: KindUser, ID: 7},
		{Kind: KindCustom, ID: 3},
		{Kind: KindLawFirm, ID: 5},
		{Kind: KindAttorney, ID: 99, LawFirmID: 5},
	}

	for _, sel := range selections {
		t.Run(string(sel.Kind), func(t *testing.T) {
			ref := ApplySelection(sel)
			resolved := Resolve(ref, dir)

			assert.NotNil(t, resolved)
			assert.Equal(t, sel.Kind, resolved.Kind)
			assert.Equal(t, sel.ID, resolved.ID)
		})
	}
}

func TestApplySelection_Exclusivity(t *testing.T) {
	ref := ApplySelection(&Assignee{Kind: KindCustom, ID: 3})

	assert.Nil(t, ref.AssigneeID)
	assert.NotNil(t, ref.CustomAssigneeID)
	assert.Nil(t, ref.LawFirmID)
	assert.Nil(t, ref.AttorneyID)
}

func TestApplySelection_AttorneySetsFirm(t *testing.T) {
	ref := ApplySelection(&Assignee{Kind: KindAttorney, ID: 99, LawFirmID: 5})

	assert.NotNil(t, ref.AttorneyID)
	assert.Equal(t, uint64(99), *ref.AttorneyID)
	assert.NotNil(t, ref.LawFirmID)
	assert.Equal(t, uint64(5), *ref.LawFirmID)
	assert.Nil(t, ref.AssigneeID)
	assert.Nil(t, ref.CustomAssigneeID)
}

func TestApplySelection_NilClearsAll(t *testing.T) {
	ref := ApplySelection(nil)

	assert.True(t, ref.IsZero())
}
