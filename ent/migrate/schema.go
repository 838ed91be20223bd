// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "meaning", Type: field.TypeString, Default: ""},
		{Name: "reading", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "prerequisites", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "locked"},
		{Name: "stage", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "wrong_count", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
		{Name: "mastery", Type: field.TypeInt, Default: 0},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 0},
		{Name: "repetition", Type: field.TypeInt, Default: 0},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "meaning_correct", Type: field.TypeInt, Default: 0},
		{Name: "reading_correct", Type: field.TypeInt, Default: 0},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_item_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[1]},
			},
			{
				Name:    "item_status",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[8]},
			},
			{
				Name:    "item_level",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[6]},
			},
			{
				Name:    "item_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[14]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "track", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "quality", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeBool},
		{Name: "from_stage", Type: field.TypeInt},
		{Name: "to_stage", Type: field.TypeInt},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// UnlockEventsColumns holds the columns for the "unlock_events" table.
	UnlockEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "item_id", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
	}
	// UnlockEventsTable holds the schema information for the "unlock_events" table.
	UnlockEventsTable = &schema.Table{
		Name:       "unlock_events",
		Columns:    UnlockEventsColumns,
		PrimaryKey: []*schema.Column{UnlockEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "unlockevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[1]},
			},
			{
				Name:    "unlockevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[2]},
			},
			{
				Name:    "unlockevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{UnlockEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ItemsTable,
		ReviewEventsTable,
		SettingsTable,
		UnlockEventsTable,
	}
)

func init() {
}
