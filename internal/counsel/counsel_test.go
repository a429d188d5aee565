package counsel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func uptr(v uint64) *uint64 {
	return &v
}

func TestAdd(t *testing.T) {
	entries := Add(nil, 1, uptr(10))
	entries = Add(entries, 1, uptr(11))
	entries = Add(entries, 2, nil)

	want := []Entry{
		{LawFirmID: 1, AttorneyID: uptr(10)},
		{LawFirmID: 1, AttorneyID: uptr(11)},
		{LawFirmID: 2},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("working set mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_DuplicatePairIsNoOp(t *testing.T) {
	entries := Add(nil, 1, uptr(10))
	again := Add(entries, 1, uptr(10))

	assert.Len(t, again, 1)

	firmOnly := Add(nil, 2, nil)
	firmOnlyAgain := Add(firmOnly, 2, nil)

	assert.Len(t, firmOnlyAgain, 1)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	entries := Add(nil, 1, uptr(10))
	_ = Add(entries, 2, uptr(20))

	assert.Len(t, entries, 1)
}

func TestAdd_KeepsFirmOnlyEntry(t *testing.T) {
	// Adding an attorney for a firm already present firm-only leaves the
	// firm-only entry in place. Both rows survive to the bulk replace.
	entries := Add(nil, 1, nil)
	entries = Add(entries, 1, uptr(10))

	want := []Entry{
		{LawFirmID: 1},
		{LawFirmID: 1, AttorneyID: uptr(10)},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("working set mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_AttorneyWithSiblingRemaining(t *testing.T) {
	entries := []Entry{
		{LawFirmID: 1, AttorneyID: uptr(10)},
		{LawFirmID: 1, AttorneyID: uptr(11)},
	}

	got := Remove(entries, 0)

	want := []Entry{{LawFirmID: 1, AttorneyID: uptr(11)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("working set mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_LastAttorneyLeavesFirmOnly(t *testing.T) {
	entries := []Entry{
		{LawFirmID: 1, AttorneyID: uptr(10)},
		{LawFirmID: 1, AttorneyID: uptr(11)},
	}

	got := Remove(entries, 0)
	got = Remove(got, 0)

	want := []Entry{{LawFirmID: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("working set mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_AttorneyWithFirmOnlyPresent(t *testing.T) {
	// The firm-only entry already keeps the firm represented, so no
	// placeholder is appended.
	entries := []Entry{
		{LawFirmID: 1},
		{LawFirmID: 1, AttorneyID: uptr(10)},
	}

	got := Remove(entries, 1)

	want := []Entry{{LawFirmID: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("working set mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_FirmOnlyDropsWholeFirm(t *testing.T) {
	entries := []Entry{
		{LawFirmID: 1},
		{LawFirmID: 1, AttorneyID: uptr(10)},
		{LawFirmID: 2, AttorneyID: uptr(20)},
	}

	got := Remove(entries, 0)

	want := []Entry{{LawFirmID: 2, AttorneyID: uptr(20)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("working set mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_OutOfRange(t *testing.T) {
	entries := []Entry{{LawFirmID: 1, AttorneyID: uptr(10)}}

	assert.Len(t, Remove(entries, -1), 1)
	assert.Len(t, Remove(entries, 1), 1)
}

func TestRemoveFirm(t *testing.T) {
	entries := []Entry{
		{LawFirmID: 1},
		{LawFirmID: 1, AttorneyID: uptr(10)},
		{LawFirmID: 2, AttorneyID: uptr(20)},
	}

	got := RemoveFirm(entries, 1)

	want := []Entry{{LawFirmID: 2, AttorneyID: uptr(20)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("working set mismatch (-want +got):\n%s", diff)
	}
}

func TestContains(t *testing.T) {
	entries := []Entry{
		{LawFirmID: 1},
		{LawFirmID: 1, AttorneyID: uptr(10)},
	}

	assert.True(t, Contains(entries, 1, nil))
	assert.True(t, Contains(entries, 1, uptr(10)))
	assert.False(t, Contains(entries, 1, uptr(11)))
	assert.False(t, Contains(entries, 2, nil))
}

func TestGroupByFirm(t *testing.T) {
	entries := []Entry{
		{LawFirmID: 1, AttorneyID: uptr(10)},
		{LawFirmID: 1, AttorneyID: uptr(11)},
		{LawFirmID: 2},
		{LawFirmID: 3},
		{LawFirmID: 3, AttorneyID: uptr(30)},
	}

	groups := GroupByFirm(entries)

	want := map[uint64]Group{
		1: {LawFirmID: 1, AttorneyIDs: []uint64{10, 11}},
		2: {LawFirmID: 2, FirmOnly: true},
		3: {LawFirmID: 3, AttorneyIDs: []uint64{30}, FirmOnly: true},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}
