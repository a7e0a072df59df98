package documentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"compliancedesk/internal/crypto"
	"compliancedesk/internal/models"

	uuid "github.com/satori/go.uuid"
)

const pkg = "documentService/"

// Files larger than this are classified from a prefix only.
const maxClassifyBytes = 10 << 20

type DocumentService struct {
	log          *slog.Logger
	docRepo      DocumentRepository
	cache        Cache
	fileStorage  FileStorage
	classifier   Classifier
	shareBaseURL string
}

func New(
	log *slog.Logger,
	docRepo DocumentRepository,
	cache Cache,
	fileStorage FileStorage,
	classifier Classifier,
	shareBaseURL string,
) *DocumentService {
	return &DocumentService{
		log:          log,
		docRepo:      docRepo,
		cache:        cache,
		fileStorage:  fileStorage,
		classifier:   classifier,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
	}
}

type ShareInput struct {
	UserID     *string
	Email      *string
	Permission models.SharePermission
	ExpiresAt  *time.Time
	Password   string
}

// UploadDocument stores the file, enriches it with best-effort
// classification and persists the document with its initial version and
// tags. Classification failure never fails the upload; a storage or
// persistence failure does, and removes the stored file.
func (ds *DocumentService) UploadDocument(ctx context.Context, requester *models.User, doc *models.Document, content io.Reader) (*models.Document, error) {
	op := pkg + "UploadDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to upload document", slog.String("name", doc.OriginalName), slog.String("mime", doc.Mime))

	if doc.OriginalName == "" || doc.DocumentType == "" {
		log.Warn("missing required upload fields")
		return nil, models.ErrInvalidParams
	}

	doc.OwnerID = requester.ID
	doc.UploadedBy = requester.ID
	doc.UploadedByAdmin = requester.IsAdmin
	doc.FileName = uuid.NewV4().String() + filepath.Ext(doc.OriginalName)
	doc.WorkflowStage = models.WorkflowStageUploaded
	doc.Status = models.StatusActive

	path, hash, size, err := ds.fileStorage.SaveFile(doc.FileName, content)
	if err != nil {
		log.Error("failed to save file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	doc.StoragePath = path
	doc.FileHash = hash
	doc.FileSize = size

	tags := ds.classify(ctx, log, doc)
	doc.AITags = tags

	if err := ds.docRepo.CreateDocument(ctx, doc, tags); err != nil {
		log.Error("failed to persist document", slog.String("error", err.Error()))
		_ = ds.fileStorage.DeleteFile(doc.StoragePath)
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	ds.invalidateOwnerCache(ctx, log, doc.OwnerID)

	log.Debug("document uploaded successfully", slog.Int64("doc_id", doc.ID), slog.String("owner_id", doc.OwnerID))

	return doc, nil
}

// classify runs the enrichment step. Any failure degrades to filename
// heuristics: the upload itself must not depend on the analysis service.
func (ds *DocumentService) classify(ctx context.Context, log *slog.Logger, doc *models.Document) []string {
	if !classifiable(doc.Mime) {
		return []string{}
	}

	if ds.classifier == nil {
		return heuristicTags(doc.OriginalName)
	}

	content, err := ds.readStoredFile(doc.StoragePath)
	if err != nil {
		log.Warn("failed to read file for classification", slog.String("error", err.Error()))
		return heuristicTags(doc.OriginalName)
	}

	cls, err := ds.classifier.Classify(ctx, doc.OriginalName, doc.Mime, content)
	if err != nil {
		log.Warn("classification failed, proceeding without enrichment", slog.String("error", err.Error()))
		return heuristicTags(doc.OriginalName)
	}

	doc.ExtractedText = cls.ExtractedText
	doc.AIConfidence = cls.Confidence

	if len(cls.Tags) == 0 {
		return heuristicTags(doc.OriginalName)
	}

	return cls.Tags
}

func (ds *DocumentService) readStoredFile(path string) ([]byte, error) {
	f, err := ds.fileStorage.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, maxClassifyBytes))
}

// AddVersion stores a new revision of an existing document. The version
// number is assigned by the repository under lock.
func (ds *DocumentService) AddVersion(ctx context.Context, requester *models.User, docID int64, changeDescription string, content io.Reader) (*models.DocumentVersion, error) {
	op := pkg + "AddVersion"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to add version", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	if doc.OwnerID != requester.ID {
		log.Warn("requester does not own document", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))
		return nil, models.ErrDocumentNotFound
	}

	fileName := uuid.NewV4().String() + filepath.Ext(doc.OriginalName)

	path, hash, size, err := ds.fileStorage.SaveFile(fileName, content)
	if err != nil {
		log.Error("failed to save file", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	version := &models.DocumentVersion{
		DocumentID:        docID,
		FileName:          fileName,
		StoragePath:       path,
		FileSize:          size,
		FileHash:          hash,
		ChangeDescription: changeDescription,
		CreatedBy:         requester.ID,
	}

	if err := ds.docRepo.AddVersion(ctx, version); err != nil {
		log.Error("failed to persist version", slog.String("error", err.Error()))
		_ = ds.fileStorage.DeleteFile(path)
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	ds.invalidateDocCache(ctx, log, docID, doc.OwnerID)

	log.Debug("version added successfully", slog.Int64("doc_id", docID), slog.Int("version", version.VersionNumber))

	return version, nil
}

// ShareDocument grants bearer access to a document via an unguessable
// token. When a password is supplied only its salted Argon2id hash is
// stored.
func (ds *DocumentService) ShareDocument(ctx context.Context, requester *models.User, docID int64, input ShareInput) (*models.DocumentShare, string, error) {
	op := pkg + "ShareDocument"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to share document", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))

	if input.UserID == nil && input.Email == nil {
		log.Warn("share without recipient")
		return nil, "", models.ErrInvalidParams
	}

	switch input.Permission {
	case models.PermissionView, models.PermissionEdit, models.PermissionDownload:
	default:
		log.Warn("invalid share permission", slog.String("permission", string(input.Permission)))
		return nil, "", models.ErrInvalidParams
	}

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		return nil, "", err
	}

	if doc.OwnerID != requester.ID {
		log.Warn("requester does not own document", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))
		return nil, "", models.ErrDocumentNotFound
	}

	token, err := crypto.NewShareToken()
	if err != nil {
		log.Error("failed to generate share token", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	share := &models.DocumentShare{
		DocumentID:       docID,
		SharedWithUserID: input.UserID,
		SharedWithEmail:  input.Email,
		Permission:       input.Permission,
		ExpiresAt:        input.ExpiresAt,
		ShareToken:       token,
		CreatedBy:        requester.ID,
	}

	if input.Password != "" {
		hash, err := crypto.HashSecret(input.Password)
		if err != nil {
			log.Error("failed to hash share password", slog.String("error", err.Error()))
			return nil, "", fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		share.IsPasswordProtected = true
		share.PasswordHash = &hash
	}

	if err := ds.docRepo.CreateShare(ctx, share); err != nil {
		log.Error("failed to persist share", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	shareURL := fmt.Sprintf("%s/shared/%s", ds.shareBaseURL, token)

	log.Debug("document shared successfully", slog.Int64("doc_id", docID), slog.Int64("share_id", share.ID))

	return share, shareURL, nil
}

// ResolveShare exchanges a share token (plus password, when protected) for
// the shared document. Every failure except a wrong password collapses to
// "share not found".
func (ds *DocumentService) ResolveShare(ctx context.Context, token string, password string) (*models.Document, *models.DocumentShare, error) {
	op := pkg + "ResolveShare"

	log := ds.log.With(slog.String("op", op))

	share, err := ds.docRepo.ShareByToken(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrShareNotFound) {
			log.Warn("share token not found")
			return nil, nil, models.ErrShareNotFound
		}
		log.Error("failed to get share by token", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if share.ExpiresAt != nil && share.ExpiresAt.Before(time.Now()) {
		log.Warn("share link expired", slog.Int64("share_id", share.ID))
		return nil, nil, models.ErrShareExpired
	}

	if share.IsPasswordProtected {
		if share.PasswordHash == nil || !crypto.VerifySecret(password, *share.PasswordHash) {
			log.Warn("share password mismatch", slog.Int64("share_id", share.ID))
			return nil, nil, models.ErrForbidden
		}
	}

	doc, err := ds.documentMetaByID(ctx, share.DocumentID)
	if err != nil {
		return nil, nil, models.ErrShareNotFound
	}

	if doc.Status == models.StatusDeleted {
		log.Warn("share points at deleted document", slog.Int64("doc_id", doc.ID))
		return nil, nil, models.ErrShareNotFound
	}

	return doc, share, nil
}

// DocumentByID returns the document when the requester may see it: owner,
// public document, or an unexpired share naming the requester. Denied and
// missing are indistinguishable by design.
func (ds *DocumentService) DocumentByID(ctx context.Context, docID int64, requester *models.User) (*models.Document, error) {
	op := pkg + "DocumentByID"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to get document by id", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	visible := doc.OwnerID == requester.ID || doc.IsPublic

	if !visible {
		shared, err := ds.docRepo.HasShareForUser(ctx, docID, requester.ID)
		if err != nil {
			log.Error("failed to check shares", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
		visible = shared
	}

	if !visible {
		log.Warn("document not visible to requester", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))
		return nil, models.ErrDocumentNotFound
	}

	if err := ds.docRepo.TouchAccess(ctx, docID, requester.ID); err != nil {
		log.Error("failed to record access", slog.String("error", err.Error()))
	}

	if err := ds.cache.Del(ctx, docCacheKey(docID)); err != nil {
		log.Warn("failed to invalidate doc cache", slog.String("error", err.Error()))
	}

	log.Debug("document found successfully", slog.Int64("doc_id", docID))

	return doc, nil
}

// Download returns the document metadata together with its file stream.
func (ds *DocumentService) Download(ctx context.Context, docID int64, requester *models.User) (*models.Document, io.ReadCloser, error) {
	op := pkg + "Download"

	log := ds.log.With(slog.String("op", op))

	doc, err := ds.DocumentByID(ctx, docID, requester)
	if err != nil {
		return nil, nil, err
	}

	file, err := ds.fileStorage.OpenFile(doc.StoragePath)
	if err != nil {
		log.Error("failed to open file from storage", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return doc, file, nil
}

// DownloadShared streams the file behind a resolved share.
func (ds *DocumentService) DownloadShared(ctx context.Context, token string, password string) (*models.Document, io.ReadCloser, error) {
	op := pkg + "DownloadShared"

	log := ds.log.With(slog.String("op", op))

	doc, _, err := ds.ResolveShare(ctx, token, password)
	if err != nil {
		return nil, nil, err
	}

	file, err := ds.fileStorage.OpenFile(doc.StoragePath)
	if err != nil {
		log.Error("failed to open file from storage", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return doc, file, nil
}

func (ds *DocumentService) ListDocuments(ctx context.Context, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error) {
	op := pkg + "ListDocuments"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to list documents",
		slog.String("requester_id", requester.ID),
		slog.String("service_type", filter.ServiceType),
		slog.String("document_type", filter.DocumentType),
		slog.String("status", filter.Status),
		slog.Int("limit", filter.Limit))

	if !filter.IsValid() {
		log.Warn("invalid filter format")
		return nil, models.ErrInvalidParams
	}

	cacheKey := listCacheKey(requester.ID, filter)

	docsJSON, err := ds.cache.Get(ctx, cacheKey)
	if err == nil && docsJSON != "" {
		docs, err := jsonToDocs(docsJSON)
		if err == nil {
			log.Debug("documents listed from cache", slog.Int("count", len(docs)))
			return docs, nil
		}
		log.Warn("failed to parse cached docs", slog.String("error", err.Error()))
	}

	docs, err := ds.docRepo.FilteredDocuments(ctx, requester.ID, filter)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			return nil, nil
		}
		log.Error("failed to list documents", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if docsJSON, err := docsToJSON(docs); err != nil {
		log.Error("failed to convert docs to json", slog.String("error", err.Error()))
	} else if err := ds.cache.Set(ctx, cacheKey, docsJSON); err != nil {
		log.Error("failed to set docs in cache", slog.String("error", err.Error()))
	}

	log.Debug("documents listed successfully", slog.Int("count", len(docs)))

	return docs, nil
}

func (ds *DocumentService) DeleteDocument(ctx context.Context, docID int64, requester *models.User) error {
	return ds.setStatus(ctx, docID, requester, models.StatusDeleted)
}

func (ds *DocumentService) ArchiveDocument(ctx context.Context, docID int64, requester *models.User) error {
	return ds.setStatus(ctx, docID, requester, models.StatusArchived)
}

// setStatus is the shared soft transition. Versions, shares and comments
// are left in place for audit.
func (ds *DocumentService) setStatus(ctx context.Context, docID int64, requester *models.User, status models.DocumentStatus) error {
	op := pkg + "setStatus"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting status transition", slog.Int64("doc_id", docID), slog.String("status", string(status)))

	if err := ds.docRepo.UpdateStatus(ctx, docID, requester.ID, status); err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found or access denied", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))
			return models.ErrDocumentNotFound
		}
		log.Error("failed to update document status", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	ds.invalidateDocCache(ctx, log, docID, requester.ID)

	log.Debug("status transition successful", slog.Int64("doc_id", docID), slog.String("status", string(status)))

	return nil
}

// VerifyIntegrity recomputes the stored file's hash and compares it with
// the hash captured at upload. A missing or unreadable file is reported
// as inaccessible, never as modified: the two call for different
// operational responses.
func (ds *DocumentService) VerifyIntegrity(ctx context.Context, docID int64, requester *models.User) (models.IntegrityResult, error) {
	op := pkg + "VerifyIntegrity"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting integrity check", slog.Int64("doc_id", docID))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		return "", err
	}

	if doc.OwnerID != requester.ID {
		log.Warn("requester does not own document", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))
		return "", models.ErrDocumentNotFound
	}

	hash, err := ds.fileStorage.HashFile(doc.StoragePath)
	if err != nil {
		log.Warn("stored file is inaccessible", slog.Int64("doc_id", docID), slog.String("error", err.Error()))
		return models.IntegrityInaccessible, nil
	}

	if hash != doc.FileHash {
		log.Warn("stored file hash mismatch", slog.Int64("doc_id", docID))
		return models.IntegrityModified, nil
	}

	return models.IntegrityValid, nil
}

func (ds *DocumentService) AddComment(ctx context.Context, requester *models.User, comment *models.DocumentComment) (*models.DocumentComment, error) {
	op := pkg + "AddComment"

	log := ds.log.With(slog.String("op", op))

	log.Debug("attempting to add comment", slog.Int64("doc_id", comment.DocumentID))

	if comment.Body == "" {
		log.Warn("empty comment body")
		return nil, models.ErrInvalidParams
	}

	if _, err := ds.DocumentByIDNoTouch(ctx, comment.DocumentID, requester); err != nil {
		return nil, err
	}

	if comment.ParentCommentID != nil {
		parent, err := ds.docRepo.CommentByID(ctx, *comment.ParentCommentID)
		if err != nil {
			if errors.Is(err, models.ErrCommentNotFound) {
				log.Warn("parent comment not found", slog.Int64("parent_id", *comment.ParentCommentID))
				return nil, models.ErrInvalidParams
			}
			log.Error("failed to get parent comment", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		// No cross-document threads.
		if parent.DocumentID != comment.DocumentID {
			log.Warn("parent comment belongs to another document", slog.Int64("parent_id", parent.ID))
			return nil, models.ErrInvalidParams
		}
	}

	comment.AuthorID = requester.ID

	if err := ds.docRepo.AddComment(ctx, comment); err != nil {
		log.Error("failed to persist comment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("comment added successfully", slog.Int64("comment_id", comment.ID))

	return comment, nil
}

// Comments lists a document's comment thread. Internal comments are only
// shown to the document owner.
func (ds *DocumentService) Comments(ctx context.Context, requester *models.User, docID int64) ([]*models.DocumentComment, error) {
	op := pkg + "Comments"

	log := ds.log.With(slog.String("op", op))

	doc, err := ds.DocumentByIDNoTouch(ctx, docID, requester)
	if err != nil {
		return nil, err
	}

	includeInternal := doc.OwnerID == requester.ID

	comments, err := ds.docRepo.Comments(ctx, docID, includeInternal)
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return comments, nil
}

func (ds *DocumentService) Versions(ctx context.Context, docID int64, requester *models.User) ([]*models.DocumentVersion, error) {
	op := pkg + "Versions"

	log := ds.log.With(slog.String("op", op))

	if _, err := ds.DocumentByIDNoTouch(ctx, docID, requester); err != nil {
		return nil, err
	}

	versions, err := ds.docRepo.Versions(ctx, docID)
	if err != nil {
		log.Error("failed to list versions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return versions, nil
}

// DocumentByIDNoTouch applies the same visibility rule as DocumentByID
// without recording an access; listing versions or comments is not a
// download.
func (ds *DocumentService) DocumentByIDNoTouch(ctx context.Context, docID int64, requester *models.User) (*models.Document, error) {
	op := pkg + "DocumentByIDNoTouch"

	log := ds.log.With(slog.String("op", op))

	doc, err := ds.documentMetaByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	visible := doc.OwnerID == requester.ID || doc.IsPublic

	if !visible {
		shared, err := ds.docRepo.HasShareForUser(ctx, docID, requester.ID)
		if err != nil {
			log.Error("failed to check shares", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
		visible = shared
	}

	if !visible {
		log.Warn("document not visible to requester", slog.Int64("doc_id", docID), slog.String("user_id", requester.ID))
		return nil, models.ErrDocumentNotFound
	}

	return doc, nil
}

func (ds *DocumentService) documentMetaByID(ctx context.Context, docID int64) (*models.Document, error) {
	op := pkg + "documentMetaByID"

	log := ds.log.With(slog.String("op", op))

	cacheKey := docCacheKey(docID)

	docJSON, err := ds.cache.Get(ctx, cacheKey)
	if err == nil && docJSON != "" {
		doc, err := jsonToDoc(docJSON)
		if err == nil {
			return doc, nil
		}
		log.Warn("failed to parse cached doc", slog.String("error", err.Error()))
	}

	doc, err := ds.docRepo.DocumentByID(ctx, docID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			log.Warn("document not found", slog.Int64("doc_id", docID))
			return nil, models.ErrDocumentNotFound
		}
		log.Error("failed to get document by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if docJSON, err := docToJSON(doc); err != nil {
		log.Error("failed to parse doc to json", slog.String("error", err.Error()))
	} else if err := ds.cache.Set(ctx, cacheKey, docJSON); err != nil {
		log.Warn("failed to set doc to cache", slog.String("error", err.Error()))
	}

	return doc, nil
}

func (ds *DocumentService) invalidateDocCache(ctx context.Context, log *slog.Logger, docID int64, ownerID string) {
	if err := ds.cache.Del(ctx, docCacheKey(docID), ownerListCacheKey(ownerID)); err != nil {
		log.Warn("failed to invalidate doc cache", slog.String("error", err.Error()))
	}
}

func (ds *DocumentService) invalidateOwnerCache(ctx context.Context, log *slog.Logger, ownerID string) {
	if err := ds.cache.Del(ctx, ownerListCacheKey(ownerID)); err != nil {
		log.Warn("failed to invalidate owner cache", slog.String("error", err.Error()))
	}
}

func docCacheKey(docID int64) string {
	return fmt.Sprintf("docs:%d", docID)
}

func listCacheKey(ownerID string, filter models.DocumentFilter) string {
	if filter == (models.DocumentFilter{}) {
		return ownerListCacheKey(ownerID)
	}

	return fmt.Sprintf("docs:list:%s:%s:%s:%s:%s:%d:%d",
		ownerID, filter.ServiceType, filter.DocumentType, filter.Status, filter.Search, filter.Limit, filter.Offset)
}

func ownerListCacheKey(ownerID string) string {
	return "docs:list:" + ownerID
}

func classifiable(mime string) bool {
	return mime == "application/pdf" || strings.HasPrefix(mime, "image/")
}

// heuristicTags is the degraded tagging path used when the analysis
// service is unavailable: well-known document words found in the file name
// become tags.
func heuristicTags(fileName string) []string {
	name := strings.ToLower(strings.TrimSuffix(fileName, filepath.Ext(fileName)))

	keywords := []string{
		"invoice", "receipt", "contract", "agreement", "tax",
		"report", "statement", "license", "certificate", "boir",
	}

	tags := make([]string, 0)

	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			tags = append(tags, kw)
		}
	}

	return tags
}

func jsonToDocs(s string) ([]*models.Document, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var docs []*models.Document

	if err := json.Unmarshal([]byte(s), &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func docsToJSON(docs []*models.Document) (string, error) {
	res, err := json.Marshal(docs)
	if err != nil {
		return "", err
	}

	return string(res), nil
}

func docToJSON(doc *models.Document) (string, error) {
	jsonSlice, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(jsonSlice), nil
}

func jsonToDoc(s string) (*models.Document, error) {
	if len(s) == 0 {
		return nil, errors.New("empty json string")
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
