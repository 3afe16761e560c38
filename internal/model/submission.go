package model

// NewsletterSignup is a normalized newsletter subscription.
type NewsletterSignup struct {
	Name  string
	Email string
	Role  string
}

// ConsultationRequest is a normalized consultation request.
type ConsultationRequest struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	Interest     string
	Message      string
}

// UnsubscribeRequest identifies the subscriber through the token from the email link.
type UnsubscribeRequest struct {
	Token string
}
