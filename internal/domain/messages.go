package domain

// User-facing messages for the slash-command replies.
const (
	MsgErrorTryAgain         = "Something went wrong. Please try again."
	MsgUnknownError          = "Unknown error. Please try again."
	MsgNoScheduledInterviews = "There are no scheduled interviews."
	MsgInterviewDeleted      = "The interview has been deleted."
	MsgNoUpcomingStarters    = "Nobody has an upcoming start date."
)

// ServerErrorMessages maps error codes returned by the management server to
// user-facing text.
var ServerErrorMessages = map[string]string{
	"invalid_auth_creds": "Authorization failed. Check the service account credentials.",
	"no_candidate":       "There is no such candidate.",
	"no_interview":       "The candidate does not have a non-expired interview.",
}

// ServerErrorMessage returns the text for a server error code, falling back
// to a generic message for unrecognized codes.
func ServerErrorMessage(code string) string {
	if msg, ok := ServerErrorMessages[code]; ok {
		return msg
	}
	return MsgUnknownError
}
