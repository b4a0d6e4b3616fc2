package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// AnswerMap stores the answer ledger of an attempt as a JSON object column
// mapping question IDs to option letters.
type AnswerMap map[int]string

// Value implements the driver.Valuer interface
func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	// JSON object keys must be strings
	out := make(map[string]string, len(m))
	for id, letter := range m {
		out[strconv.Itoa(id)] = letter
	}
	jsonData, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (m *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*m = AnswerMap{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("AnswerMap Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*m = AnswerMap{}
		return nil
	}

	raw := make(map[string]string)
	if err := json.Unmarshal(bytesToParse, &raw); err != nil {
		return err
	}
	parsed := make(AnswerMap, len(raw))
	for key, letter := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("AnswerMap Scan: non-numeric question id %q", key)
		}
		parsed[id] = letter
	}
	*m = parsed
	return nil
}

// User represents a user row synced from the identity provider.
type User struct {
	ID                string         `db:"ID"` // ULID
	GoogleID          string         `db:"GOOGLE_ID"`
	Email             string         `db:"EMAIL"`
	Name              sql.NullString `db:"NAME"`
	ProfilePictureURL sql.NullString `db:"PROFILE_PICTURE_URL"`
	CreatedAt         time.Time      `db:"CREATED_AT"`
	UpdatedAt         time.Time      `db:"UPDATED_AT"`
	DeletedAt         sql.NullTime   `db:"DELETED_AT"`
}

// NoteSet represents an uploaded study document a quiz was generated from.
type NoteSet struct {
	ID          string         `db:"ID"` // ULID
	Name        string         `db:"NAME"`
	Description sql.NullString `db:"DESCRIPTION"`
	UserID      sql.NullString `db:"USER_ID"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
	DeletedAt   sql.NullTime   `db:"DELETED_AT"`
}

// QuizAttempt represents one completed quiz attempt.
type QuizAttempt struct {
	ID               string       `db:"ID"` // ULID
	UserID           string       `db:"USER_ID"`
	NoteSetID        string       `db:"NOTE_SET_ID"`
	Answers          AnswerMap    `db:"ANSWERS"`
	Score            int          `db:"SCORE"`
	TotalQuestions   int          `db:"TOTAL_QUESTIONS"`
	TimeTakenSeconds int          `db:"TIME_TAKEN_SECONDS"`
	AttemptedAt      time.Time    `db:"ATTEMPTED_AT"`
	CreatedAt        time.Time    `db:"CREATED_AT"`
	DeletedAt        sql.NullTime `db:"DELETED_AT"`
}
