package wizard

import "fmt"

// SizeCheck classifies the audience-size answer in the test stage.
type SizeCheck string

const (
	SizeUnset      SizeCheck = ""
	SizeSufficient SizeCheck = "sufficient"
	SizeTooNarrow  SizeCheck = "too_narrow"
	SizeTooBroad   SizeCheck = "too_broad"
)

// Label returns the questionnaire wording for the size answer.
func (s SizeCheck) Label() string {
	switch s {
	case SizeSufficient:
		return "Yes - I can name 50+ people"
	case SizeTooNarrow:
		return "No - fewer than 50 people"
	case SizeTooBroad:
		return "Too broad - millions would fit"
	default:
		return ""
	}
}

// FormatOptions are the selectable offering formats. The leading empty
// entry represents "unselected" and never passes the offerings guard.
var FormatOptions = []string{
	"",
	"6-week series",
	"Drop-in classes",
	"Monthly membership",
	"Weekend workshop",
	"1-on-1 sessions",
}

// ResponseRecord accumulates everything the wizard collects. Keys only
// gain values as the wizard advances; nothing is removed except by a
// full session reset. Failing a guard never clears entered fields.
type ResponseRecord struct {
	Challenge        string    `json:"challenge,omitempty"`
	Transformation   string    `json:"transformation,omitempty"`
	Groups           []string  `json:"groups,omitempty"`
	SelectedGroup    string    `json:"selected_group,omitempty"`
	SpecificStruggle string    `json:"specific_struggle,omitempty"`
	AcuteMoment      string    `json:"acute_moment,omitempty"`
	SpecificWho      string    `json:"specific_who,omitempty"`
	SizeCheck        SizeCheck `json:"size_check,omitempty"`
	Recognition      string    `json:"recognition,omitempty"`
	Availability     string    `json:"availability,omitempty"`
	FormatPref       string    `json:"format_pref,omitempty"`
	Location         string    `json:"location,omitempty"`
	Offerings        string    `json:"offerings,omitempty"`
}

// NicheStatement derives the one-sentence niche description. It is a
// pure function of (specific_who|selected_group, specific_struggle,
// acute_moment) and returns "" until both struggle and moment are
// present. It is never edited independently.
func (r ResponseRecord) NicheStatement() string {
	if r.SpecificStruggle == "" || r.AcuteMoment == "" {
		return ""
	}
	who := r.SpecificWho
	if who == "" {
		who = r.SelectedGroup
	}
	return fmt.Sprintf("I help %s who struggle with %s, especially %s", who, r.SpecificStruggle, r.AcuteMoment)
}
