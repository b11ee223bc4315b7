// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BiometricReadingsColumns holds the columns for the "biometric_readings" table.
	BiometricReadingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "read_date", Type: field.TypeString, Size: 10},
		{Name: "read_time", Type: field.TypeString, Size: 8},
		{Name: "facial_id", Type: field.TypeString, Size: 32},
		{Name: "subject_name", Type: field.TypeString},
		{Name: "court", Type: field.TypeString, Nullable: true},
		{Name: "regime", Type: field.TypeString, Nullable: true},
		{Name: "kind", Type: field.TypeString, Default: "F"},
		{Name: "print_receipt", Type: field.TypeString, Default: "N"},
		{Name: "case_number", Type: field.TypeString, Nullable: true},
		{Name: "facility_id", Type: field.TypeString, Default: "1"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "person_readings", Type: field.TypeUUID, Nullable: true},
	}
	// BiometricReadingsTable holds the schema information for the "biometric_readings" table.
	BiometricReadingsTable = &schema.Table{
		Name:       "biometric_readings",
		Columns:    BiometricReadingsColumns,
		PrimaryKey: []*schema.Column{BiometricReadingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "biometric_readings_persons_readings",
				Columns:    []*schema.Column{BiometricReadingsColumns[12]},
				RefColumns: []*schema.Column{PersonsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "biometricreading_facial_id_read_date",
				Unique:  false,
				Columns: []*schema.Column{BiometricReadingsColumns[3], BiometricReadingsColumns[1]},
			},
			{
				Name:    "biometricreading_facility_id",
				Unique:  false,
				Columns: []*schema.Column{BiometricReadingsColumns[10]},
			},
		},
	}
	// DeviceCommandLogsColumns holds the columns for the "device_command_logs" table.
	DeviceCommandLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "command", Type: field.TypeString, Size: 40},
		{Name: "status", Type: field.TypeString, Size: 20},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "operator", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DeviceCommandLogsTable holds the schema information for the "device_command_logs" table.
	DeviceCommandLogsTable = &schema.Table{
		Name:       "device_command_logs",
		Columns:    DeviceCommandLogsColumns,
		PrimaryKey: []*schema.Column{DeviceCommandLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "devicecommandlog_command",
				Unique:  false,
				Columns: []*schema.Column{DeviceCommandLogsColumns[1]},
			},
			{
				Name:    "devicecommandlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeviceCommandLogsColumns[5]},
			},
		},
	}
	// PersonsColumns holds the columns for the "persons" table.
	PersonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "facial_id", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "full_name", Type: field.TypeString, Size: 120},
		{Name: "court", Type: field.TypeString, Nullable: true},
		{Name: "regime", Type: field.TypeString, Nullable: true},
		{Name: "case_number", Type: field.TypeString, Nullable: true},
		{Name: "facility_id", Type: field.TypeString, Default: "1"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PersonsTable holds the schema information for the "persons" table.
	PersonsTable = &schema.Table{
		Name:       "persons",
		Columns:    PersonsColumns,
		PrimaryKey: []*schema.Column{PersonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "person_facility_id",
				Unique:  false,
				Columns: []*schema.Column{PersonsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BiometricReadingsTable,
		DeviceCommandLogsTable,
		PersonsTable,
	}
)

func init() {
	BiometricReadingsTable.ForeignKeys[0].RefTable = PersonsTable
}
