// Code generated by ent, DO NOT EDIT.

package ent

import (
	"face-gateway/ent/biometricreading"
	"face-gateway/ent/devicecommandlog"
	"face-gateway/ent/person"
	"face-gateway/ent/schema"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	biometricreadingFields := schema.BiometricReading{}.Fields()
	_ = biometricreadingFields
	// biometricreadingDescReadDate is the schema descriptor for read_date field.
	biometricreadingDescReadDate := biometricreadingFields[0].Descriptor()
	// biometricreading.ReadDateValidator is a validator for the "read_date" field. It is called by the builders before save.
	biometricreading.ReadDateValidator = func() func(string) error {
		validators := biometricreadingDescReadDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(read_date string) error {
			for _, fn := range fns {
				if err := fn(read_date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// biometricreadingDescReadTime is the schema descriptor for read_time field.
	biometricreadingDescReadTime := biometricreadingFields[1].Descriptor()
	// biometricreading.ReadTimeValidator is a validator for the "read_time" field. It is called by the builders before save.
	biometricreading.ReadTimeValidator = func() func(string) error {
		validators := biometricreadingDescReadTime.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(read_time string) error {
			for _, fn := range fns {
				if err := fn(read_time); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// biometricreadingDescFacialID is the schema descriptor for facial_id field.
	biometricreadingDescFacialID := biometricreadingFields[2].Descriptor()
	// biometricreading.FacialIDValidator is a validator for the "facial_id" field. It is called by the builders before save.
	biometricreading.FacialIDValidator = func() func(string) error {
		validators := biometricreadingDescFacialID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(facial_id string) error {
			for _, fn := range fns {
				if err := fn(facial_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// biometricreadingDescSubjectName is the schema descriptor for subject_name field.
	biometricreadingDescSubjectName := biometricreadingFields[3].Descriptor()
	// biometricreading.SubjectNameValidator is a validator for the "subject_name" field. It is called by the builders before save.
	biometricreading.SubjectNameValidator = biometricreadingDescSubjectName.Validators[0].(func(string) error)
	// biometricreadingDescKind is the schema descriptor for kind field.
	biometricreadingDescKind := biometricreadingFields[6].Descriptor()
	// biometricreading.DefaultKind holds the default value on creation for the kind field.
	biometricreading.DefaultKind = biometricreadingDescKind.Default.(string)
	// biometricreadingDescPrintReceipt is the schema descriptor for print_receipt field.
	biometricreadingDescPrintReceipt := biometricreadingFields[7].Descriptor()
	// biometricreading.DefaultPrintReceipt holds the default value on creation for the print_receipt field.
	biometricreading.DefaultPrintReceipt = biometricreadingDescPrintReceipt.Default.(string)
	// biometricreadingDescFacilityID is the schema descriptor for facility_id field.
	biometricreadingDescFacilityID := biometricreadingFields[9].Descriptor()
	// biometricreading.DefaultFacilityID holds the default value on creation for the facility_id field.
	biometricreading.DefaultFacilityID = biometricreadingDescFacilityID.Default.(string)
	// biometricreadingDescCreatedAt is the schema descriptor for created_at field.
	biometricreadingDescCreatedAt := biometricreadingFields[10].Descriptor()
	// biometricreading.DefaultCreatedAt holds the default value on creation for the created_at field.
	biometricreading.DefaultCreatedAt = biometricreadingDescCreatedAt.Default.(func() time.Time)
	devicecommandlogFields := schema.DeviceCommandLog{}.Fields()
	_ = devicecommandlogFields
	// devicecommandlogDescCommand is the schema descriptor for command field.
	devicecommandlogDescCommand := devicecommandlogFields[1].Descriptor()
	// devicecommandlog.CommandValidator is a validator for the "command" field. It is called by the builders before save.
	devicecommandlog.CommandValidator = func() func(string) error {
		validators := devicecommandlogDescCommand.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(command string) error {
			for _, fn := range fns {
				if err := fn(command); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// devicecommandlogDescStatus is the schema descriptor for status field.
	devicecommandlogDescStatus := devicecommandlogFields[2].Descriptor()
	// devicecommandlog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	devicecommandlog.StatusValidator = func() func(string) error {
		validators := devicecommandlogDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// devicecommandlogDescCreatedAt is the schema descriptor for created_at field.
	devicecommandlogDescCreatedAt := devicecommandlogFields[5].Descriptor()
	// devicecommandlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	devicecommandlog.DefaultCreatedAt = devicecommandlogDescCreatedAt.Default.(func() time.Time)
	// devicecommandlogDescID is the schema descriptor for id field.
	devicecommandlogDescID := devicecommandlogFields[0].Descriptor()
	// devicecommandlog.DefaultID holds the default value on creation for the id field.
	devicecommandlog.DefaultID = devicecommandlogDescID.Default.(func() uuid.UUID)
	personFields := schema.Person{}.Fields()
	_ = personFields
	// personDescFacialID is the schema descriptor for facial_id field.
	personDescFacialID := personFields[1].Descriptor()
	// person.FacialIDValidator is a validator for the "facial_id" field. It is called by the builders before save.
	person.FacialIDValidator = func() func(string) error {
		validators := personDescFacialID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(facial_id string) error {
			for _, fn := range fns {
				if err := fn(facial_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personDescFullName is the schema descriptor for full_name field.
	personDescFullName := personFields[2].Descriptor()
	// person.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	person.FullNameValidator = func() func(string) error {
		validators := personDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// personDescFacilityID is the schema descriptor for facility_id field.
	personDescFacilityID := personFields[6].Descriptor()
	// person.DefaultFacilityID holds the default value on creation for the facility_id field.
	person.DefaultFacilityID = personDescFacilityID.Default.(string)
	// personDescCreatedAt is the schema descriptor for created_at field.
	personDescCreatedAt := personFields[7].Descriptor()
	// person.DefaultCreatedAt holds the default value on creation for the created_at field.
	person.DefaultCreatedAt = personDescCreatedAt.Default.(func() time.Time)
	// personDescID is the schema descriptor for id field.
	personDescID := personFields[0].Descriptor()
	// person.DefaultID holds the default value on creation for the id field.
	person.DefaultID = personDescID.Default.(func() uuid.UUID)
}
