package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Destination is a single bucket-list entry.
type Destination struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	Continent string    `db:"continent"`
	Note      string    `db:"note"`
	Tags      TagList   `db:"tags"`
	Visited   bool      `db:"visited"`
	CreatedAt string    `db:"created_at"`
}

// TagList is stored as a JSON array inside a single text column. The
// serialized form never leaves the repository layer.
type TagList []string

func (t *TagList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = TagList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("scan tags: unsupported type %T", src)
	}

	if len(raw) == 0 {
		*t = TagList{}
		return nil
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return fmt.Errorf("scan tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	*t = tags
	return nil
}

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	data, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return string(data), nil
}

// NewTimestamp returns the creation timestamp format used across the API:
// ISO-8601 in UTC with microsecond precision and a trailing "Z".
func NewTimestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000Z07:00")
}
