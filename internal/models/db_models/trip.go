package db_models

import (
	"database/sql/driver"
	"errors"
)

// JSONB stores a raw JSON document in a postgres jsonb column. The trip
// payloads are written once as documents and never updated field by field,
// so there is no relational breakdown of their contents.
type JSONB []byte

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return errors.New("jsonb: unsupported scan source")
	}
	return nil
}

// Trip is one saved generation result: the preferences the user submitted and
// the canonical trip data produced from the model response. A regeneration
// inserts a new row; rows are read-only after the insert.
type Trip struct {
	BaseModel
	UserEmail     string `gorm:"index"`
	Destination   string
	Days          int
	UserSelection JSONB `gorm:"type:jsonb"`
	TripData      JSONB `gorm:"type:jsonb"`
}
