package models

import "time"

// Pick label constants
const (
	LabelYes = "yes"
	LabelNo  = "no"
)

// Request types

type CastVoteRequest struct {
	Option string `json:"option"`
}

type SetPickRequest struct {
	Label string `json:"label"`
}

type RSVPRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Childcare bool   `json:"childcare"`
	Comments  string `json:"comments"`
}

// Response types

type CastVoteResponse struct {
	Recorded bool   `json:"recorded"`
	Option   string `json:"option"`
	Message  string `json:"message,omitempty"`
}

type SetPickResponse struct {
	ItemID  string      `json:"item_id"`
	Label   string      `json:"label"`
	Summary PickSummary `json:"summary"`
}

type ResetResponse struct {
	Cleared bool `json:"cleared"`
}

type ProfileResponse struct {
	Profile map[string]string `json:"profile"`
	// Recovered is set when stored data could not be parsed and an
	// empty profile was substituted.
	Recovered bool `json:"recovered,omitempty"`
}

// Domain types

type Poll struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Total   int          `json:"total"`
	Options []PollOption `json:"options"`
}

type PollOption struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type UserVote struct {
	PollID  string    `json:"poll_id"`
	Option  string    `json:"option"`
	VotedAt time.Time `json:"voted_at"`
}

// PollResults carries independently rounded per-option percentages.
// Rounding per option means the percentages may not sum to exactly 100.
type PollResults struct {
	PollID   string         `json:"poll_id"`
	Title    string         `json:"title"`
	Total    int            `json:"total"`
	Voted    bool           `json:"voted"`
	MyOption string         `json:"my_option,omitempty"`
	Options  []OptionResult `json:"options"`
}

type OptionResult struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type PickItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Label    string `json:"label,omitempty"` // current pick, empty if unpicked
}

type Pick struct {
	ItemID   string    `json:"item_id"`
	Label    string    `json:"label"`
	PickedAt time.Time `json:"picked_at"`
}

type PickSummary struct {
	Yes   int `json:"yes"`
	No    int `json:"no"`
	Total int `json:"total"`
}

type RSVP struct {
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Childcare bool      `json:"childcare"`
	Comments  string    `json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// Consolidated export types

type ConsolidatedExport struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Profile     map[string]string `json:"profile"`
	Picks       []ExportPick      `json:"picks"`
	Votes       []ExportVote      `json:"votes"`
	Summary     ExportSummary     `json:"summary"`
}

type ExportPick struct {
	ItemID   string    `json:"item_id"`
	Title    string    `json:"title"`
	Label    string    `json:"label"`
	PickedAt time.Time `json:"picked_at"`
}

type ExportVote struct {
	PollID  string    `json:"poll_id"`
	Title   string    `json:"title"`
	Option  string    `json:"option"`
	VotedAt time.Time `json:"voted_at"`
}

type ExportSummary struct {
	TotalVotes     int `json:"total_votes"`
	PicksYes       int `json:"picks_yes"`
	PicksNo        int `json:"picks_no"`
	PollsCompleted int `json:"polls_completed"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
