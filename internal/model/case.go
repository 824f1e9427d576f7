package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	CaseTypeDivorce     = "divorce"
	CaseTypeInheritance = "inheritance"
	CaseTypeCustody     = "custody"
	CaseTypeAlimony     = "alimony"
	CaseTypeOther       = "other"
)

const (
	CaseStatusPending     = "pending"
	CaseStatusUnderReview = "under_review"
	CaseStatusInProgress  = "in_progress"
	CaseStatusCompleted   = "completed"
	CaseStatusRejected    = "rejected"
)

var caseTypes = map[string]bool{
	CaseTypeDivorce:     true,
	CaseTypeInheritance: true,
	CaseTypeCustody:     true,
	CaseTypeAlimony:     true,
	CaseTypeOther:       true,
}

var caseStatuses = map[string]bool{
	CaseStatusPending:     true,
	CaseStatusUnderReview: true,
	CaseStatusInProgress:  true,
	CaseStatusCompleted:   true,
	CaseStatusRejected:    true,
}

func ValidCaseType(t string) bool {
	return caseTypes[t]
}

// ValidCaseStatus reports whether s is a known status. Any known status may follow any other.
func ValidCaseStatus(s string) bool {
	return caseStatuses[s]
}

type Case struct {
	ID          string    `db:"id" json:"id" bson:"_id"`
	UserID      string    `db:"user_id" json:"user_id" bson:"user_id"`
	CaseType    string    `db:"case_type" json:"case_type" bson:"case_type"`
	Title       string    `db:"title" json:"title" bson:"title"`
	Description string    `db:"description" json:"description" bson:"description"`
	Status      string    `db:"status" json:"status" bson:"status"`
	Files       FileRefs  `db:"files" json:"files" bson:"files"`
	CreatedAt   time.Time `db:"created_at" json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at" bson:"updated_at"`
}

// AdminCase is a case joined with its owner's display info and links to its attachments.
type AdminCase struct {
	Case
	UserName  string   `json:"user_name"`
	UserEmail string   `json:"user_email"`
	FileURLs  []string `json:"file_urls"`
}

// FileRefs is the ordered list of stored attachment names of a case.
// SQL stores it as a JSON array in a TEXT column.
type FileRefs []string

func (f FileRefs) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(f))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FileRefs) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = FileRefs{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into FileRefs", src)
	}

	var refs []string
	if len(raw) > 0 {
		err := json.Unmarshal(raw, &refs)
		if err != nil {
			return fmt.Errorf("failed to decode file refs: %w", err)
		}
	}
	if refs == nil {
		refs = []string{}
	}
	*f = refs
	return nil
}
