// Package app maps ledger state to a renderer-neutral view tree. Every
// interactive element carries its Action as data; the TUI, the CLI formatter
// and the HTTP API each interpret the same tree.
package app

type ActionKind string

const (
	ActionOpenPlatform   ActionKind = "open_platform"
	ActionDeletePlatform ActionKind = "delete_platform"
	ActionEditLoan       ActionKind = "edit_loan"
	ActionDeleteLoan     ActionKind = "delete_loan"
)

// Action describes what activating an element does. Destructive actions set
// Confirm so renderers ask before dispatching them.
type Action struct {
	Kind       ActionKind `json:"kind"`
	Label      string     `json:"label"`
	PlatformID string     `json:"platform_id"`
	LoanID     string     `json:"loan_id,omitempty"`
	Confirm    bool       `json:"confirm"`
}

// Find returns the first action of the given kind.
func Find(actions []Action, kind ActionKind) (Action, bool) {
	for _, a := range actions {
		if a.Kind == kind {
			return a, true
		}
	}
	return Action{}, false
}
