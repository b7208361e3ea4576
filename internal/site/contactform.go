package site

// FormStatus is the lifecycle state of the contact form.
type FormStatus string

const (
	FormIdle    FormStatus = "idle"
	FormLoading FormStatus = "loading"
	FormSuccess FormStatus = "success"
	FormError   FormStatus = "error"
)

// Form copy shown to the visitor.
const (
	SubmitLabel        = "XABARNI YUBORISH"
	SubmittingLabel    = "YUBORILMOQDA..."
	FormErrorText      = "Xatolik yuz berdi. Iltimos qaytadan urinib ko'ring."
	FormSuccessTitle   = "Xabar yuborildi!"
	FormSuccessText    = "Tez orada siz bilan bog'lanamiz."
	FormResetLabel     = "Yana yuborish"
	DefaultPhoneRegion = "uz"
)

// FormValues are the fields the visitor typed.
type FormValues struct {
	Name    string
	Phone   string
	Message string
}

// ContactForm models the form lifecycle:
//
//	idle -> loading -> success -> idle (reset)
//	idle -> loading -> error -> loading (retry)
//
// Values survive the error state so a retry resubmits what was typed.
type ContactForm struct {
	Status FormStatus
	Values FormValues
}

func NewContactForm() ContactForm {
	return ContactForm{Status: FormIdle}
}

// Submit moves the form into loading. It reports false when a submission is
// already in flight or the success panel is showing.
func (f *ContactForm) Submit() bool {
	switch f.Status {
	case FormIdle, FormError, "":
		f.Status = FormLoading
		return true
	default:
		return false
	}
}

// Resolve records the outcome of the in-flight submission. Success clears the fields.
func (f *ContactForm) Resolve(ok bool) {
	if f.Status != FormLoading {
		return
	}
	if ok {
		f.Status = FormSuccess
		f.Values = FormValues{}
		return
	}
	f.Status = FormError
}

// Reset returns from the success panel to an empty idle form.
func (f *ContactForm) Reset() {
	if f.Status != FormSuccess {
		return
	}
	f.Status = FormIdle
	f.Values = FormValues{}
}

// Disabled reports whether inputs and the submit button are locked.
func (f ContactForm) Disabled() bool {
	return f.Status == FormLoading
}

// ButtonLabel is the submit button caption for the current state.
func (f ContactForm) ButtonLabel() string {
	if f.Status == FormLoading {
		return SubmittingLabel
	}
	return SubmitLabel
}
