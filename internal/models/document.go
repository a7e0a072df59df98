package models

import "time"

type DocumentStatus string

const (
	StatusActive   DocumentStatus = "active"
	StatusArchived DocumentStatus = "archived"
	StatusDeleted  DocumentStatus = "deleted"
)

const WorkflowStageUploaded = "uploaded"

type SharePermission string

const (
	PermissionView     SharePermission = "view"
	PermissionEdit     SharePermission = "edit"
	PermissionDownload SharePermission = "download"
)

type IntegrityResult string

const (
	IntegrityValid        IntegrityResult = "valid"
	IntegrityModified     IntegrityResult = "modified"
	IntegrityInaccessible IntegrityResult = "inaccessible"
)

type Document struct {
	ID              int64          `json:"id"`
	OwnerID         string         `json:"owner_id"`
	BusinessID      *int64         `json:"business_id,omitempty"`
	FileName        string         `json:"file_name"`
	OriginalName    string         `json:"original_name"`
	StoragePath     string         `json:"storage_path"`
	FileSize        int64          `json:"file_size"`
	Mime            string         `json:"mime"`
	FileHash        string         `json:"file_hash"`
	DocumentType    string         `json:"document_type"`
	ServiceType     string         `json:"service_type"`
	Category        *string        `json:"category,omitempty"`
	ExtractedText   *string        `json:"extracted_text,omitempty"`
	AITags          []string       `json:"ai_tags"`
	AIConfidence    *float64       `json:"ai_confidence,omitempty"`
	UploadedBy      string         `json:"uploaded_by"`
	UploadedByAdmin bool           `json:"uploaded_by_admin"`
	IsPublic        bool           `json:"is_public"`
	Version         int            `json:"version"`
	IsLatestVersion bool           `json:"is_latest_version"`
	WorkflowStage   string         `json:"workflow_stage"`
	Status          DocumentStatus `json:"status"`
	LastAccessedAt  *time.Time     `json:"last_accessed_at,omitempty"`
	LastAccessedBy  *string        `json:"last_accessed_by,omitempty"`
	DownloadCount   int64          `json:"download_count"`
	CreatedAt       time.Time      `json:"created_at"`
}

type DocumentVersion struct {
	ID                int64     `json:"id"`
	DocumentID        int64     `json:"document_id"`
	VersionNumber     int       `json:"version_number"`
	FileName          string    `json:"file_name"`
	StoragePath       string    `json:"storage_path"`
	FileSize          int64     `json:"file_size"`
	FileHash          string    `json:"file_hash"`
	ChangeDescription string    `json:"change_description"`
	IsLatest          bool      `json:"is_latest"`
	CreatedBy         string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
}

type DocumentShare struct {
	ID                  int64           `json:"id"`
	DocumentID          int64           `json:"document_id"`
	SharedWithUserID    *string         `json:"shared_with_user_id,omitempty"`
	SharedWithEmail     *string         `json:"shared_with_email,omitempty"`
	Permission          SharePermission `json:"permission"`
	ExpiresAt           *time.Time      `json:"expires_at,omitempty"`
	IsPasswordProtected bool            `json:"is_password_protected"`
	PasswordHash        *string         `json:"-"`
	ShareToken          string          `json:"share_token"`
	CreatedBy           string          `json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`
}

type DocumentComment struct {
	ID              int64     `json:"id"`
	DocumentID      int64     `json:"document_id"`
	AuthorID        string    `json:"author_id"`
	Body            string    `json:"body"`
	IsInternal      bool      `json:"is_internal"`
	ParentCommentID *int64    `json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type DocumentTag struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsSystem  bool   `json:"is_system"`
	CreatedBy string `json:"created_by"`
}

// Classification is what the external analysis service returns for an
// uploaded file. All fields are optional enrichment.
type Classification struct {
	ExtractedText *string
	Tags          []string
	Confidence    *float64
}

type DocumentFilter struct {
	ServiceType  string
	DocumentType string
	Status       string
	Search       string
	Limit        int
	Offset       int
}

var allowedStatuses = map[string]bool{
	string(StatusActive):   true,
	string(StatusArchived): true,
	string(StatusDeleted):  true,
}

func (f DocumentFilter) IsValid() bool {
	if f.Status != "" && !allowedStatuses[f.Status] {
		return false
	}
	if f.Limit < 0 || f.Offset < 0 {
		return false
	}
	return true
}
