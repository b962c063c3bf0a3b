package types

// Intent represents the classified purpose of a customer message.
// The wire values are the German labels the classifier prompt demands,
// so a valid model response maps onto an Intent without translation.
type Intent string

const (
	IntentCancellation  Intent = "stornierung"
	IntentAddressChange Intent = "adressänderung"
	IntentNone          Intent = "keine"
)

// AllIntents returns all valid intents
func AllIntents() []Intent {
	return []Intent{
		IntentCancellation,
		IntentAddressChange,
		IntentNone,
	}
}

// IsValid checks if the intent is one of the known categories
func (i Intent) IsValid() bool {
	switch i {
	case IntentCancellation, IntentAddressChange, IntentNone:
		return true
	default:
		return false
	}
}

// Actionable reports whether the intent triggers notification side effects
func (i Intent) Actionable() bool {
	return i == IntentCancellation || i == IntentAddressChange
}

// Label returns the human readable German label used in ticket notes
func (i Intent) Label() string {
	switch i {
	case IntentCancellation:
		return "Stornierung"
	case IntentAddressChange:
		return "Adressänderung"
	default:
		return "Keine Aktion"
	}
}

// String returns the string representation of the intent
func (i Intent) String() string {
	return string(i)
}
