package model

// CollectionContactMessage is the document collection holding contact form submissions.
const CollectionContactMessage = "contactmessage"

// Contact message statuses. Submissions always start as StatusNew; no exposed
// operation transitions them.
const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusResponded = "responded"
)

// ContactMessage represents a contact form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
