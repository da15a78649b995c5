package domain

// RequestKind names a website form-submission inbox.
type RequestKind string

const (
	RequestContact        RequestKind = "contact"
	RequestDemo           RequestKind = "demo"
	RequestPricing        RequestKind = "pricing"
	RequestSupport        RequestKind = "support"
	RequestCredentials    RequestKind = "credentials"
	RequestJobApplication RequestKind = "job-applications"
)

func RequestKinds() []RequestKind {
	return []RequestKind{
		RequestContact, RequestDemo, RequestPricing,
		RequestSupport, RequestCredentials, RequestJobApplication,
	}
}

func (k RequestKind) Valid() bool {
	for _, kind := range RequestKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// Request is a single submission in one of the inboxes. The backend uses one
// generic shape across all six forms; kind-specific answers land in Fields.
type Request struct {
	ID        FlexID            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     FlexString        `json:"phone"`
	Subject   string            `json:"subject"`
	Message   string            `json:"message"`
	Read      FlexBool          `json:"is_read"`
	Fields    map[string]string `json:"fields,omitempty"`
	CreatedAt string            `json:"created_at"`
}
