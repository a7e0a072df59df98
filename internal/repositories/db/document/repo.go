package documentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"compliancedesk/internal/entities"
	"compliancedesk/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "documentRepo/"

const documentColumns = `
			d.id AS id,
			d.owner_id AS owner_id,
			d.business_id AS business_id,
			d.file_name AS file_name,
			d.original_name AS original_name,
			d.storage_path AS storage_path,
			d.file_size AS file_size,
			d.mime AS mime,
			d.file_hash AS file_hash,
			d.document_type AS document_type,
			d.service_type AS service_type,
			d.category AS category,
			d.extracted_text AS extracted_text,
			d.ai_tags AS ai_tags,
			d.ai_confidence AS ai_confidence,
			d.uploaded_by AS uploaded_by,
			d.uploaded_by_admin AS uploaded_by_admin,
			d.is_public AS is_public,
			d.version AS version,
			d.is_latest_version AS is_latest_version,
			d.workflow_stage AS workflow_stage,
			d.status AS status,
			d.last_accessed_at AS last_accessed_at,
			d.last_accessed_by AS last_accessed_by,
			d.download_count AS download_count,
			d.created_at AS created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

// CreateDocument inserts the document row, its initial version row and any
// tag assignments as one transaction, so a document is never visible
// without its version.
func (r *repository) CreateDocument(ctx context.Context, doc *models.Document, tags []string) error {
	op := pkg + "CreateDocument"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO documents (
			owner_id, business_id, file_name, original_name, storage_path, file_size,
			mime, file_hash, document_type, service_type, category, extracted_text,
			ai_tags, ai_confidence, uploaded_by, uploaded_by_admin, is_public,
			version, is_latest_version, workflow_stage, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 1, TRUE, $18, $19)
		RETURNING id, created_at`,
		doc.OwnerID, doc.BusinessID, doc.FileName, doc.OriginalName, doc.StoragePath, doc.FileSize,
		doc.Mime, doc.FileHash, doc.DocumentType, doc.ServiceType, doc.Category, doc.ExtractedText,
		pq.Array(doc.AITags), doc.AIConfidence, doc.UploadedBy, doc.UploadedByAdmin, doc.IsPublic,
		doc.WorkflowStage, doc.Status,
	).Scan(&doc.ID, &doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO document_versions (document_id, version_number, file_name, storage_path, file_size, file_hash, change_description, is_latest, created_by)
		VALUES ($1, 1, $2, $3, $4, $5, 'Initial upload', TRUE, $6)`,
		doc.ID, doc.FileName, doc.StoragePath, doc.FileSize, doc.FileHash, doc.UploadedBy)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := assignTags(ctx, tx, doc.ID, doc.UploadedBy, tags); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	doc.Version = 1
	doc.IsLatestVersion = true

	return nil
}

// assignTags gets-or-creates each tag by name and inserts the assignment,
// ignoring duplicate-key conflicts so repeated suggestions stay idempotent.
func assignTags(ctx context.Context, tx *sqlx.Tx, docID int64, assignedBy string, tags []string) error {
	for _, name := range tags {
		var tagID int64

		err := tx.QueryRowContext(ctx,
			`INSERT INTO document_tags (name, is_system, created_by)
			VALUES ($1, TRUE, $2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`,
			name, assignedBy).Scan(&tagID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO document_tag_assignments (document_id, tag_id, assigned_by)
			VALUES ($1, $2, $3)
			ON CONFLICT (document_id, tag_id) DO NOTHING`,
			docID, tagID, assignedBy)
		if err != nil {
			return err
		}
	}

	return nil
}

// AddVersion appends the next revision of a document. The parent row and
// the previous latest version row are updated in the same transaction, so
// version numbers stay gapless and exactly one version is latest.
func (r *repository) AddVersion(ctx context.Context, version *models.DocumentVersion) error {
	op := pkg + "AddVersion"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	var current int

	err = tx.QueryRowContext(ctx,
		`SELECT version FROM documents WHERE id = $1 FOR UPDATE`,
		version.DocumentID).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	version.VersionNumber = current + 1
	version.IsLatest = true

	_, err = tx.ExecContext(ctx,
		`UPDATE document_versions SET is_latest = FALSE WHERE document_id = $1 AND is_latest`,
		version.DocumentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO document_versions (document_id, version_number, file_name, storage_path, file_size, file_hash, change_description, is_latest, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8)
		RETURNING id, created_at`,
		version.DocumentID, version.VersionNumber, version.FileName, version.StoragePath,
		version.FileSize, version.FileHash, version.ChangeDescription, version.CreatedBy,
	).Scan(&version.ID, &version.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE documents SET version = $2, file_name = $3, storage_path = $4, file_size = $5, file_hash = $6
		WHERE id = $1`,
		version.DocumentID, version.VersionNumber, version.FileName, version.StoragePath,
		version.FileSize, version.FileHash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) DocumentByID(ctx context.Context, id int64) (*models.Document, error) {
	op := pkg + "DocumentByID"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc,
		`SELECT`+documentColumns+`
			FROM documents d
			WHERE d.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return docEntityToModel(&rawDoc), nil
}

// TouchAccess records a successful access in a single statement so the
// counter increment and the accessed-at fields move together.
func (r *repository) TouchAccess(ctx context.Context, id int64, userID string) error {
	op := pkg + "TouchAccess"

	_, err := r.db.ExecContext(ctx,
		`UPDATE documents
		SET last_accessed_at = now(), last_accessed_by = $2, download_count = download_count + 1
		WHERE id = $1`,
		id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) FilteredDocuments(ctx context.Context, ownerID string, filter models.DocumentFilter) ([]*models.Document, error) {
	op := pkg + "FilteredDocuments"

	rawDocs := make([]entities.Document, 0)

	baseQuery := `SELECT` + documentColumns + `
		FROM documents d
		WHERE d.owner_id = $1
		AND ($2 = '' OR d.service_type = $2)
		AND ($3 = '' OR d.document_type = $3)
		AND (CASE WHEN $4 = '' THEN d.status <> 'deleted' ELSE d.status = $4 END)
		AND ($5 = '' OR d.original_name ILIKE '%' || $5 || '%' OR COALESCE(d.extracted_text, '') ILIKE '%' || $5 || '%')
		ORDER BY d.created_at DESC`

	args := []any{
		ownerID,
		filter.ServiceType,
		filter.DocumentType,
		filter.Status,
		filter.Search,
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)

		baseQuery += ` LIMIT $6 OFFSET $7`
	}

	err := r.db.SelectContext(ctx, &rawDocs, baseQuery, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	docs := make([]*models.Document, 0, len(rawDocs))

	for i := range rawDocs {
		docs = append(docs, docEntityToModel(&rawDocs[i]))
	}

	return docs, nil
}

// UpdateStatus is the ownership-checked soft transition used by delete and
// archive. A zero row count means the document does not exist or the
// caller does not own it; the two are not distinguished.
func (r *repository) UpdateStatus(ctx context.Context, id int64, ownerID string, status models.DocumentStatus) error {
	op := pkg + "UpdateStatus"

	res, err := r.db.ExecContext(ctx,
		`UPDATE documents SET status = $3 WHERE id = $1 AND owner_id = $2`,
		id, ownerID, string(status))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
	}

	return nil
}

func (r *repository) HasShareForUser(ctx context.Context, docID int64, userID string) (bool, error) {
	op := pkg + "HasShareForUser"

	var exists bool

	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (
			SELECT 1 FROM document_shares s
			WHERE s.document_id = $1
			AND s.shared_with_user_id = $2
			AND (s.expires_at IS NULL OR s.expires_at > now())
		)`,
		docID, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (r *repository) CreateShare(ctx context.Context, share *models.DocumentShare) error {
	op := pkg + "CreateShare"

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO document_shares (document_id, shared_with_user_id, shared_with_email, permission, expires_at, is_password_protected, password_hash, share_token, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		share.DocumentID, share.SharedWithUserID, share.SharedWithEmail, string(share.Permission),
		share.ExpiresAt, share.IsPasswordProtected, share.PasswordHash, share.ShareToken, share.CreatedBy,
	).Scan(&share.ID, &share.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) ShareByToken(ctx context.Context, token string) (*models.DocumentShare, error) {
	op := pkg + "ShareByToken"

	rawShare := entities.DocumentShare{}

	err := r.db.GetContext(ctx, &rawShare,
		`SELECT
			s.id AS id,
			s.document_id AS document_id,
			s.shared_with_user_id AS shared_with_user_id,
			s.shared_with_email AS shared_with_email,
			s.permission AS permission,
			s.expires_at AS expires_at,
			s.is_password_protected AS is_password_protected,
			s.password_hash AS password_hash,
			s.share_token AS share_token,
			s.created_by AS created_by,
			s.created_at AS created_at
		FROM document_shares s
		WHERE s.share_token = $1`,
		token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrShareNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.DocumentShare{
		ID:                  rawShare.ID,
		DocumentID:          rawShare.DocumentID,
		SharedWithUserID:    rawShare.SharedWithUserID,
		SharedWithEmail:     rawShare.SharedWithEmail,
		Permission:          models.SharePermission(rawShare.Permission),
		ExpiresAt:           rawShare.ExpiresAt,
		IsPasswordProtected: rawShare.IsPasswordProtected,
		PasswordHash:        rawShare.PasswordHash,
		ShareToken:          rawShare.ShareToken,
		CreatedBy:           rawShare.CreatedBy,
		CreatedAt:           rawShare.CreatedAt,
	}, nil
}

func (r *repository) AddComment(ctx context.Context, comment *models.DocumentComment) error {
	op := pkg + "AddComment"

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO document_comments (document_id, author_id, body, is_internal, parent_comment_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		comment.DocumentID, comment.AuthorID, comment.Body, comment.IsInternal, comment.ParentCommentID,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) CommentByID(ctx context.Context, id int64) (*models.DocumentComment, error) {
	op := pkg + "CommentByID"

	rawComment := entities.DocumentComment{}

	err := r.db.GetContext(ctx, &rawComment,
		`SELECT
			c.id AS id,
			c.document_id AS document_id,
			c.author_id AS author_id,
			c.body AS body,
			c.is_internal AS is_internal,
			c.parent_comment_id AS parent_comment_id,
			c.created_at AS created_at
		FROM document_comments c
		WHERE c.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrCommentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return commentEntityToModel(&rawComment), nil
}

func (r *repository) Comments(ctx context.Context, docID int64, includeInternal bool) ([]*models.DocumentComment, error) {
	op := pkg + "Comments"

	rawComments := make([]entities.DocumentComment, 0)

	err := r.db.SelectContext(ctx, &rawComments,
		`SELECT
			c.id AS id,
			c.document_id AS document_id,
			c.author_id AS author_id,
			c.body AS body,
			c.is_internal AS is_internal,
			c.parent_comment_id AS parent_comment_id,
			c.created_at AS created_at
		FROM document_comments c
		WHERE c.document_id = $1
		AND ($2 OR NOT c.is_internal)
		ORDER BY c.created_at ASC`,
		docID, includeInternal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comments := make([]*models.DocumentComment, 0, len(rawComments))

	for i := range rawComments {
		comments = append(comments, commentEntityToModel(&rawComments[i]))
	}

	return comments, nil
}

func (r *repository) Versions(ctx context.Context, docID int64) ([]*models.DocumentVersion, error) {
	op := pkg + "Versions"

	rawVersions := make([]entities.DocumentVersion, 0)

	err := r.db.SelectContext(ctx, &rawVersions,
		`SELECT
			v.id AS id,
			v.document_id AS document_id,
			v.version_number AS version_number,
			v.file_name AS file_name,
			v.storage_path AS storage_path,
			v.file_size AS file_size,
			v.file_hash AS file_hash,
			v.change_description AS change_description,
			v.is_latest AS is_latest,
			v.created_by AS created_by,
			v.created_at AS created_at
		FROM document_versions v
		WHERE v.document_id = $1
		ORDER BY v.version_number ASC`,
		docID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	versions := make([]*models.DocumentVersion, 0, len(rawVersions))

	for _, rawVersion := range rawVersions {
		versions = append(versions, &models.DocumentVersion{
			ID:                rawVersion.ID,
			DocumentID:        rawVersion.DocumentID,
			VersionNumber:     rawVersion.VersionNumber,
			FileName:          rawVersion.FileName,
			StoragePath:       rawVersion.StoragePath,
			FileSize:          rawVersion.FileSize,
			FileHash:          rawVersion.FileHash,
			ChangeDescription: rawVersion.ChangeDescription,
			IsLatest:          rawVersion.IsLatest,
			CreatedBy:         rawVersion.CreatedBy,
			CreatedAt:         rawVersion.CreatedAt,
		})
	}

	return versions, nil
}

func docEntityToModel(rawDoc *entities.Document) *models.Document {
	return &models.Document{
		ID:              rawDoc.ID,
		OwnerID:         rawDoc.OwnerID,
		BusinessID:      rawDoc.BusinessID,
		FileName:        rawDoc.FileName,
		OriginalName:    rawDoc.OriginalName,
		StoragePath:     rawDoc.StoragePath,
		FileSize:        rawDoc.FileSize,
		Mime:            rawDoc.Mime,
		FileHash:        rawDoc.FileHash,
		DocumentType:    rawDoc.DocumentType,
		ServiceType:     rawDoc.ServiceType,
		Category:        rawDoc.Category,
		ExtractedText:   rawDoc.ExtractedText,
		AITags:          rawDoc.AITags,
		AIConfidence:    rawDoc.AIConfidence,
		UploadedBy:      rawDoc.UploadedBy,
		UploadedByAdmin: rawDoc.UploadedByAdmin,
		IsPublic:        rawDoc.IsPublic,
		Version:         rawDoc.Version,
		IsLatestVersion: rawDoc.IsLatestVersion,
		WorkflowStage:   rawDoc.WorkflowStage,
		Status:          models.DocumentStatus(rawDoc.Status),
		LastAccessedAt:  rawDoc.LastAccessedAt,
		LastAccessedBy:  rawDoc.LastAccessedBy,
		DownloadCount:   rawDoc.DownloadCount,
		CreatedAt:       rawDoc.CreatedAt,
	}
}

func commentEntityToModel(rawComment *entities.DocumentComment) *models.DocumentComment {
	return &models.DocumentComment{
		ID:              rawComment.ID,
		DocumentID:      rawComment.DocumentID,
		AuthorID:        rawComment.AuthorID,
		Body:            rawComment.Body,
		IsInternal:      rawComment.IsInternal,
		ParentCommentID: rawComment.ParentCommentID,
		CreatedAt:       rawComment.CreatedAt,
	}
}
