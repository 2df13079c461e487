package folio

// FormAction represents what ended an on-screen keyboard editing session.
type FormAction int

const (
	FormActionNone      FormAction = iota // Session still open
	FormActionConfirmed                   // User confirmed the entered text (Start/Enter)
	FormActionCancelled                   // User dismissed without keeping changes (B)
	FormActionNextField                   // User confirmed and moved to the next field
)

// SubmitResult is what the contact page reports after a simulated
// submission.
type SubmitResult struct {
	ReceiptID string // Generated receipt identifier shown to the user
	Name      string
	Email     string
	Message   string
}
