package entities

import (
	"time"

	"github.com/lib/pq"
)

type Document struct {
	ID              int64          `db:"id"`
	OwnerID         string         `db:"owner_id"`
	BusinessID      *int64         `db:"business_id"`
	FileName        string         `db:"file_name"`
	OriginalName    string         `db:"original_name"`
	StoragePath     string         `db:"storage_path"`
	FileSize        int64          `db:"file_size"`
	Mime            string         `db:"mime"`
	FileHash        string         `db:"file_hash"`
	DocumentType    string         `db:"document_type"`
	ServiceType     string         `db:"service_type"`
	Category        *string        `db:"category"`
	ExtractedText   *string        `db:"extracted_text"`
	AITags          pq.StringArray `db:"ai_tags"`
	AIConfidence    *float64       `db:"ai_confidence"`
	UploadedBy      string         `db:"uploaded_by"`
	UploadedByAdmin bool           `db:"uploaded_by_admin"`
	IsPublic        bool           `db:"is_public"`
	Version         int            `db:"version"`
	IsLatestVersion bool           `db:"is_latest_version"`
	WorkflowStage   string         `db:"workflow_stage"`
	Status          string         `db:"status"`
	LastAccessedAt  *time.Time     `db:"last_accessed_at"`
	LastAccessedBy  *string        `db:"last_accessed_by"`
	DownloadCount   int64          `db:"download_count"`
	CreatedAt       time.Time      `db:"created_at"`
}

type DocumentVersion struct {
	ID                int64     `db:"id"`
	DocumentID        int64     `db:"document_id"`
	VersionNumber     int       `db:"version_number"`
	FileName          string    `db:"file_name"`
	StoragePath       string    `db:"storage_path"`
	FileSize          int64     `db:"file_size"`
	FileHash          string    `db:"file_hash"`
	ChangeDescription string    `db:"change_description"`
	IsLatest          bool      `db:"is_latest"`
	CreatedBy         string    `db:"created_by"`
	CreatedAt         time.Time `db:"created_at"`
}

type DocumentShare struct {
	ID                  int64      `db:"id"`
	DocumentID          int64      `db:"document_id"`
	SharedWithUserID    *string    `db:"shared_with_user_id"`
	SharedWithEmail     *string    `db:"shared_with_email"`
	Permission          string     `db:"permission"`
	ExpiresAt           *time.Time `db:"expires_at"`
	IsPasswordProtected bool       `db:"is_password_protected"`
	PasswordHash        *string    `db:"password_hash"`
	ShareToken          string     `db:"share_token"`
	CreatedBy           string     `db:"created_by"`
	CreatedAt           time.Time  `db:"created_at"`
}

type DocumentComment struct {
	ID              int64     `db:"id"`
	DocumentID      int64     `db:"document_id"`
	AuthorID        string    `db:"author_id"`
	Body            string    `db:"body"`
	IsInternal      bool      `db:"is_internal"`
	ParentCommentID *int64    `db:"parent_comment_id"`
	CreatedAt       time.Time `db:"created_at"`
}

type DocumentTag struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	IsSystem  bool   `db:"is_system"`
	CreatedBy string `db:"created_by"`
}
