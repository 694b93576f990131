package appointment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// CollectionVersion is the envelope version written by EncodeCollection.
// Version 0 is the bare JSON array the browser client used to write.
const CollectionVersion = 1

var ErrCorruptCollection = errors.New("stored appointment collection is corrupt")

type collectionEnvelope struct {
	Version      int           `json:"version"`
	Appointments []Appointment `json:"appointments"`
}

// storedEnvelope is the read side of collectionEnvelope. A nil Version means
// the field was missing.
type storedEnvelope struct {
	Version      *int          `json:"version"`
	Appointments []Appointment `json:"appointments"`
}

// EncodeCollection serializes the full collection into the versioned envelope.
func EncodeCollection(appts []Appointment) ([]byte, error) {
	if appts == nil {
		appts = []Appointment{}
	}
	data, err := json.Marshal(collectionEnvelope{
		Version:      CollectionVersion,
		Appointments: appts,
	})
	if err != nil {
		return nil, fmt.Errorf("encode appointment collection: %w", err)
	}
	return data, nil
}

// DecodeCollection parses a stored blob. Empty input is an empty collection.
// Anything that does not validate is reported as ErrCorruptCollection.
func DecodeCollection(data []byte) ([]Appointment, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Appointment{}, nil
	}

	var appts []Appointment

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &appts); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptCollection, err)
		}
	case '{':
		env, err := decodeEnvelope(trimmed)
		if err != nil {
			return nil, err
		}
		appts = env.Appointments
	default:
		return nil, fmt.Errorf("%w: unexpected leading byte %q", ErrCorruptCollection, trimmed[0])
	}

	if appts == nil {
		appts = []Appointment{}
	}

	if err := validateCollection(appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// decodeEnvelope only accepts objects written by EncodeCollection: no unknown
// fields, a version in 1..CollectionVersion, nothing after the object.
func decodeEnvelope(data []byte) (storedEnvelope, error) {
	var env storedEnvelope

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return storedEnvelope{}, fmt.Errorf("%w: %v", ErrCorruptCollection, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return storedEnvelope{}, fmt.Errorf("%w: trailing data after envelope", ErrCorruptCollection)
	}

	switch {
	case env.Version == nil:
		return storedEnvelope{}, fmt.Errorf("%w: envelope has no version", ErrCorruptCollection)
	case *env.Version < 1 || *env.Version > CollectionVersion:
		return storedEnvelope{}, fmt.Errorf("%w: unsupported version %d", ErrCorruptCollection, *env.Version)
	}
	return env, nil
}

func validateCollection(appts []Appointment) error {
	seen := make(map[string]struct{}, len(appts))
	for i, a := range appts {
		if a.ID == "" {
			return fmt.Errorf("%w: record %d has no id", ErrCorruptCollection, i)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrCorruptCollection, a.ID)
		}
		seen[a.ID] = struct{}{}

		if !a.Status.Valid() {
			return fmt.Errorf("%w: record %s has unknown status %q", ErrCorruptCollection, a.ID, a.Status)
		}
	}
	return nil
}
