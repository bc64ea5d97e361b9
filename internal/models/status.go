package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Roles
const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// Application statuses. This is the single vocabulary shared by the status
// update allow-list, the aggregate buckets, and the stored records.
const (
	StatusApplied     = "applied"
	StatusPending     = "pending"
	StatusShortlisted = "shortlisted"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

// ApplicationStatuses is the closed allow-list for status writes.
var ApplicationStatuses = []string{
	StatusApplied,
	StatusPending,
	StatusShortlisted,
	StatusAccepted,
	StatusRejected,
}

// ValidApplicationStatus reports whether s is in the allow-list.
// Comparison is case-insensitive; stored values are lowercase.
func ValidApplicationStatus(s string) bool {
	s = strings.ToLower(s)
	for _, allowed := range ApplicationStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// Interview lifecycle. Transitions are not constrained: any status write may
// set any of these regardless of the current value.
const (
	InterviewScheduled   = "scheduled"
	InterviewCompleted   = "completed"
	InterviewCancelled   = "cancelled"
	InterviewRescheduled = "rescheduled"
)

// InterviewModes lists the accepted meeting modes.
var InterviewModes = []string{"Video Call", "Offline", "Phone", "In-Person", "Other"}

// Flag is a bool that additionally accepts "" (and quoted booleans) in JSON,
// coercing the empty string to false. Some clients send isVerified as "".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case `""`, "null":
		*f = false
		return nil
	case `"true"`:
		*f = true
		return nil
	case `"false"`:
		*f = false
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*f = Flag(b)
	return nil
}

// Scan reads the column back from any driver that stores booleans as bools
// or integers (sqlite stores them as int64).
func (f *Flag) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = Flag(v != 0)
	case []byte:
		*f = Flag(len(v) > 0 && (v[0] == '1' || v[0] == 't' || v[0] == 'T'))
	case string:
		*f = Flag(v == "1" || strings.EqualFold(v, "true"))
	default:
		return fmt.Errorf("cannot scan %T into Flag", src)
	}
	return nil
}

func (f Flag) Value() (driver.Value, error) {
	return bool(f), nil
}
