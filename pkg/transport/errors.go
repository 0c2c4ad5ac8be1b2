package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/peopledesk/peopledesk/pkg/serrors"
)

// errorEnvelope is the union of error bodies the backend produces. Some
// endpoints return {"message": …}, some {"error": …}, newer ones include a
// stable code.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// normalizeError maps a failed response to a coded error. Precedence:
// a structured code from the body wins; otherwise a 404 or an empty-result
// message is classified as EMPTY_RESULT so list fetches can treat it as an
// empty collection instead of a visible failure.
func normalizeError(status int, raw []byte) error {
	var body errorEnvelope
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = strings.TrimSpace(string(raw))
	}
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "request failed"
	}

	code := body.Code
	if code == "" {
		switch {
		case status == http.StatusNotFound:
			code = serrors.CodeEmptyResult
		case serrors.IsEmptyResultMessage(message):
			code = serrors.CodeEmptyResult
		case status == http.StatusUnauthorized:
			code = serrors.CodeUnauthorized
		case status == http.StatusForbidden:
			code = serrors.CodeForbidden
		default:
			code = serrors.CodeRequestFailed
		}
	}

	return serrors.NewError(code, message)
}

func wrapTransport(err error) error {
	return serrors.Wrap(err, serrors.CodeTransport, "request failed")
}
