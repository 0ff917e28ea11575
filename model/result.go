package model

// Result is the outcome of a single fetch: either a binary payload or the
// failure reported by the engine. Exactly one variant is populated.
type Result struct {
	payload []byte
	err     error
}

// Data builds a successful Result. A nil payload is normalized to an empty
// one so a data Result never carries a nil payload. The payload is held as
// given and must not be mutated after construction.
func Data(payload []byte) Result {
	if payload == nil {
		payload = []byte{}
	}

	return Result{payload: payload}
}

// Failure builds a failed Result carrying the engine's error verbatim.
// A nil error degrades to an empty data Result so the two variants stay
// mutually exclusive.
func Failure(err error) Result {
	if err == nil {
		return Data(nil)
	}

	return Result{err: err}
}

// Payload returns the fetched bytes. It is nil for the failure variant and
// never nil for the data variant.
func (r Result) Payload() []byte {
	return r.payload
}

// Err returns the failure reported by the engine, or nil for the data variant.
func (r Result) Err() error {
	return r.err
}

// Failed reports whether the Result holds the failure variant.
func (r Result) Failed() bool {
	return r.err != nil
}
