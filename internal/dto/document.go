package dto

import (
	"mime/multipart"
	"time"
)

type UploadDocumentRequest struct {
	Meta UploadMeta
	File multipart.File
}

type UploadMeta struct {
	DocumentName string `json:"document_name"`
	DocumentType string `json:"document_type"`
	ServiceType  string `json:"service_type"`
	Category     string `json:"category,omitempty"`
	BusinessID   *int64 `json:"business_id,omitempty"`
	IsPublic     bool   `json:"public"`
	Mime         string `json:"mime"`
}

type DocumentResponse struct {
	ID             int64      `json:"id"`
	OriginalName   string     `json:"name"`
	Mime           string     `json:"mime"`
	DocumentType   string     `json:"document_type"`
	ServiceType    string     `json:"service_type"`
	Category       *string    `json:"category,omitempty"`
	FileSize       int64      `json:"file_size"`
	FileHash       string     `json:"file_hash"`
	AITags         []string   `json:"ai_tags"`
	AIConfidence   *float64   `json:"ai_confidence,omitempty"`
	IsPublic       bool       `json:"public"`
	Version        int        `json:"version"`
	WorkflowStage  string     `json:"workflow_stage"`
	Status         string     `json:"status"`
	DownloadCount  int64      `json:"download_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	CreatedAt      time.Time  `json:"created"`
}

type ShareDocumentRequest struct {
	UserID     *string    `json:"user_id,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Permission string     `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Password   string     `json:"password,omitempty"`
}

type ShareDocumentResponse struct {
	ID         int64      `json:"id"`
	DocumentID int64      `json:"document_id"`
	Permission string     `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	ShareURL   string     `json:"share_url"`
}

type NewVersionMeta struct {
	ChangeDescription string `json:"change_description"`
	Mime              string `json:"mime"`
}

type VersionResponse struct {
	VersionNumber     int       `json:"version_number"`
	FileName          string    `json:"file_name"`
	FileSize          int64     `json:"file_size"`
	ChangeDescription string    `json:"change_description"`
	IsLatest          bool      `json:"is_latest"`
	CreatedBy         string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
}

type CommentRequest struct {
	Body            string `json:"body"`
	IsInternal      bool   `json:"is_internal"`
	ParentCommentID *int64 `json:"parent_comment_id,omitempty"`
}

type IntegrityResponse struct {
	DocumentID int64  `json:"document_id"`
	Result     string `json:"result"`
}
