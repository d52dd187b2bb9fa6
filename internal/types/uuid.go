package types

import (
	google_uuid "github.com/google/uuid"
)

// UUID wraps google/uuid so that it can be bound from URI and query
// parameters by gin.
type UUID struct {
	google_uuid.UUID
}

// NilUUID is the zero UUID.
var NilUUID UUID

// UnmarshalParam binds a URI or query parameter to a UUID.
// An empty parameter yields the nil UUID so that optional query
// parameters can be left out.
func (u *UUID) UnmarshalParam(param string) error {
	if param == "" {
		*u = NilUUID
		return nil
	}

	parsed, err := google_uuid.Parse(param)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
