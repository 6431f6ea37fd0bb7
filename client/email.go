package client

import (
	"fmt"
	"net/url"
	"strings"
)

// RepresentativeEmail is the student representative inbox that receives
// mentoring requests. Requests are matched manually, so the client never
// creates a mentorship record itself.
const RepresentativeEmail = "mentoring@university.edu"

// RequestEmail is a ready-to-send mentoring request.
type RequestEmail struct {
	To      string
	CC      string
	Subject string
	Body    string
}

// BuildRequestEmail fills the request template with the mentor's name and
// contact address.
func BuildRequestEmail(profile *MentorProfile) RequestEmail {
	firstName := profile.Name
	if idx := strings.Index(profile.Name, " "); idx > 0 {
		firstName = profile.Name[:idx]
	}

	body := fmt.Sprintf(`Dear Student Representative,

I would like to request %s as my mentor for this semester.

My name is [Your Name], and I am a [Year/Semester] student studying [Your Major].

I am interested in connecting with %s because [brief reason - e.g., "I'm also an international student and would appreciate guidance on academic transition"].

Thank you for facilitating this connection.

Best regards,
[Your Name]`, profile.Name, firstName)

	return RequestEmail{
		To:      RepresentativeEmail,
		CC:      profile.Email,
		Subject: "Mentoring Request - " + profile.Name,
		Body:    body,
	}
}

// String renders the email the way it is shown for copying.
func (e RequestEmail) String() string {
	return fmt.Sprintf("To: %s\nCC: %s\nSubject: %s\n\n%s", e.To, e.CC, e.Subject, e.Body)
}

// MailtoURL builds a mailto link that opens the user's mail client with the
// recipient, CC and subject prefilled.
func (e RequestEmail) MailtoURL() string {
	query := url.Values{}
	query.Set("cc", e.CC)
	query.Set("subject", e.Subject)
	return "mailto:" + e.To + "?" + query.Encode()
}
