package common

const (
	// MaxContactRequestBody limits JSON and form bodies for contact submissions.
	MaxContactRequestBody = 100 << 10
	// GenericErrorMessage is the only failure text shown to visitors.
	GenericErrorMessage = "Serverda xatolik yuz berdi"
	// SkippedRelayMessage accompanies a successful response when relaying is not configured.
	SkippedRelayMessage = "Message received (Telegram not configured)"
)
