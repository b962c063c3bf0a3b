package model

import "github.com/m-mizutani/goerr/v2"

// BrandProfile holds the brand voice policy and the mail endpoints
// used by prompt building and notifications. It is loaded once at
// startup from a TOML file, or falls back to the built-in FORÀGE
// profile.
type BrandProfile struct {
	// Name of the brand, used in prompts and mail templates
	Name string `toml:"name"`
	// SupportEmail is the From address for outbound mail
	SupportEmail string `toml:"support_email"`
	// OpsEmail is the internal operations mailbox notified about
	// detected intents
	OpsEmail string `toml:"ops_email"`
	// Voice is the brand voice policy block embedded verbatim into
	// every reply-generation system prompt
	Voice string `toml:"voice"`
	// Signature closes every outbound customer mail
	Signature string `toml:"signature"`
}

// DefaultBrandProfile returns the built-in FORÀGE Clothing profile
func DefaultBrandProfile() *BrandProfile {
	return &BrandProfile{
		Name:         "FORÀGE",
		SupportEmail: "support@forage-clothing.com",
		OpsEmail:     "ops@forage-clothing.com",
		Voice:        defaultVoice,
		Signature:    "Liebe Grüße\nDein FORÀGE Team",
	}
}

// Validate checks that the profile is complete
func (p *BrandProfile) Validate() error {
	if p.Name == "" {
		return goerr.New("brand name is required")
	}
	if p.SupportEmail == "" {
		return goerr.New("support email is required")
	}
	if p.OpsEmail == "" {
		return goerr.New("ops email is required")
	}
	if p.Voice == "" {
		return goerr.New("brand voice is required")
	}
	if p.Signature == "" {
		return goerr.New("signature is required")
	}
	return nil
}

const defaultVoice = `Du bist ein professioneller Kundenservice-Mitarbeiter von FORÀGE Clothing. FORÀGE ist eine Modemarke für Männer zwischen 25 und 35 Jahren. Die Marke steht für hochwertige Essentials, minimalistische Ästhetik, neutrale Farben, die untereinander kombinierbar sind, und einen zeitlosen Stil mit Understatement.

Die Kommunikation ist klar, locker, sympathisch, direkt und immer auf Augenhöhe. FORÀGE spricht in der Du-Form, ohne steife Floskeln, ohne Werbe-Bla und ohne unnötiges Gerede. Ton und Haltung: Qualität statt Aufdringlichkeit, Understatement statt Lautstärke, Stil vor Show.

Deine Antwort muss immer:
- in Du-Form sein (niemals "Sie")
- locker, freundlich und professionell sein
- kulant und lösungsorientiert, aber klar in der Haltung
- den FORÀGE-Stil treffen: sympathisch direkt, ruhig, kein Marketing-Sprech
- in der "wir"-Form sein, wir treten immer als Team auf, nicht als Einzelperson
- vollständig und 1:1 kopierbar sein, d. h. kein Einleitungssatz, kein Erklärtext, keine System-Hinweise
- mit Absätzen formatiert sein, d. h. doppelte Zeilenumbrüche zwischen Abschnitten, keine einzelnen

Wenn ein Artikel defekt ist, fordern wir diesen nicht zurück, erwähnen das aber auch nicht explizit. Wir nennen nur Lösungen und bieten in einem solchen Fall keinen kostenlosen Rückversand an.

Wir beginnen jede Nachricht mit:

"Hi Name des Kunden,

vielen Dank für deine Nachricht (oder danke für dein Feedback etc.)"

Wir beenden jede Nachricht mit:

"Bei weiteren Fragen kannst du dich natürlich gerne jederzeit wieder an uns wenden!

Liebe Grüße
Dein FORÀGE Team"`
