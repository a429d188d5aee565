// Package assignee maps the four mutually exclusive assignee foreign keys
// carried by tasks and counsel rows to a single tagged value and back.
package assignee

// Kind identifies which directory an assignee belongs to.
type Kind string

const (
	KindUser     Kind = "user"
	KindCustom   Kind = "custom"
	KindLawFirm  Kind = "law_firm"
	KindAttorney Kind = "attorney"
)

// Ref holds the four assignee foreign-key slots. At most one is non-nil,
// except that a non-nil AttorneyID also carries the attorney's LawFirmID.
// ApplySelection is the only writer of these fields.
type Ref struct {
	AssigneeID       *uint64 `gorm:"index" json:"assignee_id"`
	CustomAssigneeID *uint64 `json:"custom_assignee_id"`
	LawFirmID        *uint64 `json:"law_firm_id"`
	AttorneyID       *uint64 `json:"attorney_id"`
}

// Assignee is the resolved variant. Known reports whether the referenced id
// was found in its directory; unknown ids keep the raw id and a placeholder
// label so a dangling reference never breaks rendering.
type Assignee struct {
	Kind        Kind   `json:"kind"`
	ID          uint64 `json:"id"`
	Label       string `json:"label"`
	Known       bool   `json:"known"`
	Initials    string `json:"initials,omitempty"`
	AvatarColor string `json:"avatar_color,omitempty"`
	Position    string `json:"position,omitempty"`
	Specialty   string `json:"specialty,omitempty"`
	LawFirmID   uint64 `json:"law_firm_id,omitempty"` // attorney only
}

// UserRecord is a directory row for an internal team member.
type UserRecord struct {
	ID          uint64
	FullName    string
	Initials    string
	AvatarColor string
}

// CustomRecord is a directory row for an ad-hoc external assignee.
type CustomRecord struct {
	ID   uint64
	Name string
}

// FirmRecord is a directory row for a law firm.
type FirmRecord struct {
	ID        uint64
	Name      string
	Specialty string
}

// AttorneyRecord is a directory row for an attorney at a firm.
type AttorneyRecord struct {
	ID          uint64
	Name        string
	Position    string
	LawFirmID   uint64
	Initials    string
	AvatarColor string
}

// Directory holds the lookup tables Resolve consults, keyed by id.
type Directory struct {
	Users           map[uint64]UserRecord
	CustomAssignees map[uint64]CustomRecord
	LawFirms        map[uint64]FirmRecord
	Attorneys       map[uint64]AttorneyRecord
}

// NewDirectory builds a Directory from directory slices.
func NewDirectory(users []UserRecord, customs []CustomRecord, firms []FirmRecord, attorneys []AttorneyRecord) Directory {
	dir := Directory{
		Users:           make(map[uint64]UserRecord, len(users)),
		CustomAssignees: make(map[uint64]CustomRecord, len(customs)),
		LawFirms:        make(map[uint64]FirmRecord, len(firms)),
		Attorneys:       make(map[uint64]AttorneyRecord, len(attorneys)),
	}
	for _, u := range users {
		dir.Users[u.ID] = u
	}
	for _, c := range customs {
		dir.CustomAssignees[c.ID] = c
	}
	for _, f := range firms {
		dir.LawFirms[f.ID] = f
	}
	for _, a := range attorneys {
		dir.Attorneys[a.ID] = a
	}
	return dir
}

const (
	LabelUnassigned      = "Unassigned"
	labelUnknownUser     = "Unknown User"
	labelUnknownCustom   = "Unknown Assignee"
	labelUnknownLawFirm  = "Unknown Law Firm"
	labelUnknownAttorney = "Unknown Attorney"
)

// Resolve returns the single variant a ref points at, or nil when every slot
// is empty. Precedence when more than one slot is unexpectedly populated:
// user, then custom assignee, then firm-without-attorney, then attorney.
// A missing directory row yields an unknown variant, never an error.
func Resolve(ref Ref, dir Directory) *Assignee {
	switch {
	case ref.AssigneeID != nil:
		if u, ok := dir.Users[*ref.AssigneeID]; ok {
			return &Assignee{
				Kind:        KindUser,
				ID:          u.ID,
				Label:       u.FullName,
				Known:       true,
				Initials:    u.Initials,
				AvatarColor: u.AvatarColor,
			}
		}
		return &Assignee{Kind: KindUser, ID: *ref.AssigneeID, Label: labelUnknownUser}

	case ref.CustomAssigneeID != nil:
		if c, ok := dir.CustomAssignees[*ref.CustomAssigneeID]; ok {
			return &Assignee{Kind: KindCustom, ID: c.ID, Label: c.Name, Known: true}
		}
		return &Assignee{Kind: KindCustom, ID: *ref.CustomAssigneeID, Label: labelUnknownCustom}

	case ref.LawFirmID != nil && ref.AttorneyID == nil:
		if f, ok := dir.LawFirms[*ref.LawFirmID]; ok {
			return &Assignee{
				Kind:      KindLawFirm,
				ID:        f.ID,
				Label:     f.Name,
				Known:     true,
				Specialty: f.Specialty,
			}
		}
		return &Assignee{Kind: KindLawFirm, ID: *ref.LawFirmID, Label: labelUnknownLawFirm}

	case ref.AttorneyID != nil:
		if a, ok := dir.Attorneys[*ref.AttorneyID]; ok {
			return &Assignee{
				Kind:        KindAttorney,
				ID:          a.ID,
				Label:       a.Name,
				Known:       true,
				Initials:    a.Initials,
				AvatarColor: a.AvatarColor,
				Position:    a.Position,
				LawFirmID:   a.LawFirmID,
			}
		}
		unknown := &Assignee{Kind: KindAttorney, ID: *ref.AttorneyID, Label: labelUnknownAttorney}
		if ref.LawFirmID != nil {
			unknown.LawFirmID = *ref.LawFirmID
		}
		return unknown
	}

	return nil
}

// LabelFor returns the display name for a ref, or "Unassigned".
func LabelFor(ref Ref, dir Directory) string {
	if resolved := Resolve(ref, dir); resolved != nil {
		return resolved.Label
	}
	return LabelUnassigned
}

// ApplySelection returns a ref with exactly the slot matching the selection
// populated and the rest cleared. A nil selection clears everything.
// Selecting an attorney also sets LawFirmID, the one permitted pair.
func ApplySelection(sel *Assignee) Ref {
	var ref Ref
	if sel == nil {
		return ref
	}

	id := sel.ID
	switch sel.Kind {
	case KindUser:
		ref.AssigneeID = &id
	case KindCustom:
		ref.CustomAssigneeID = &id
	case KindLawFirm:
		ref.LawFirmID = &id
	case KindAttorney:
		ref.AttorneyID = &id
		if sel.LawFirmID != 0 {
			firmID := sel.LawFirmID
			ref.LawFirmID = &firmID
		}
	}
	return ref
}

// IsZero reports whether no slot is populated.
func (r Ref) IsZero() bool {
	return r.AssigneeID == nil && r.CustomAssigneeID == nil && r.LawFirmID == nil && r.AttorneyID == nil
}
