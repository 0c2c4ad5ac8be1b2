package transport

import (
	"encoding/json"

	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type envelopeKind int

const (
	envelopeBare envelopeKind = iota
	envelopeData
	envelopeNamed
)

// Envelope describes how one endpoint wraps its payload. The backend is not
// consistent across endpoints, so each endpoint declares its own shape and
// the client flattens all of them into Response.Data.
type Envelope struct {
	kind  envelopeKind
	field string
}

// Bare declares an endpoint that returns the payload directly.
func Bare() Envelope { return Envelope{kind: envelopeBare} }

// DataField declares an endpoint that wraps the payload as {"data": …}.
func DataField() Envelope { return Envelope{kind: envelopeData} }

// Named declares an endpoint that wraps the payload as
// {"success": true, "<field>": …}.
func Named(field string) Envelope { return Envelope{kind: envelopeNamed, field: field} }

func decode[T any](raw []byte, env Envelope) (T, error) {
	var zero T

	switch env.kind {
	case envelopeData:
		var wrapper struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return zero, serrors.Wrap(err, serrors.CodeDecode, "malformed data envelope")
		}
		raw = wrapper.Data
	case envelopeNamed:
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return zero, serrors.Wrap(err, serrors.CodeDecode, "malformed response envelope")
		}
		if successRaw, ok := fields["success"]; ok {
			var success bool
			if err := json.Unmarshal(successRaw, &success); err == nil && !success {
				return zero, normalizeError(0, raw)
			}
		}
		payload, ok := fields[env.field]
		if !ok {
			return zero, serrors.NewError(serrors.CodeDecode, "response missing field: "+env.field)
		}
		raw = payload
	}

	if len(raw) == 0 || string(raw) == "null" {
		return zero, nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, serrors.Wrap(err, serrors.CodeDecode, "malformed payload")
	}
	return out, nil
}
