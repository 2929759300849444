package model

import "time"

type BaseModel struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SystemActor is the audit identity used for machine-generated mutations,
// e.g. the nightly settlement sweep.
const SystemActor = "machine"
