package guard

import "github.com/google/uuid"

// NotNilUUID checks that an identifier is not the nil UUID.
func NotNilUUID(value uuid.UUID, name ...string) uuid.UUID {
	return NotNilUUIDWith(value, invalidArg(name, "must not be the nil UUID"))
}

// NotNilUUIDWith is NotNilUUID raising the supplied error instead of the default.
func NotNilUUIDWith(value uuid.UUID, err error) uuid.UUID {
	if value == uuid.Nil {
		raise(err)
	}
	return value
}
