// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BiometricReading is the predicate function for biometricreading builders.
type BiometricReading func(*sql.Selector)

// DeviceCommandLog is the predicate function for devicecommandlog builders.
type DeviceCommandLog func(*sql.Selector)

// Person is the predicate function for person builders.
type Person func(*sql.Selector)
