package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/app/workflow"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
	"github.com/upgoma/upg-portal/internal/pkg/email"
	"github.com/upgoma/upg-portal/internal/pkg/filestorage"
)

// RegistrationStore is the persistence contract for admission records.
type RegistrationStore interface {
	Insert(ctx context.Context, reg *models.Registration) (int64, error)
	CountByFaculty(ctx context.Context) (map[string]int64, error)
}

// RegistrationService finalizes admission drafts: it uploads the
// buffered attachments, persists the record and sends the confirmation
// email.
type RegistrationService interface {
	Submit(ctx context.Context, draft *workflow.Draft) (*models.Registration, error)
	Summary(ctx context.Context) (map[string]int64, error)
}

type registrationService struct {
	store  RegistrationStore // nil when the record store is not configured
	files  filestorage.FileStorage
	mailer email.EmailService
	logger zerolog.Logger
}

// NewRegistrationService wires the submission pipeline.
func NewRegistrationService(store RegistrationStore, files filestorage.FileStorage, mailer email.EmailService, logger zerolog.Logger) RegistrationService {
	return &registrationService{store: store, files: files, mailer: mailer, logger: logger}
}

// Submit runs the strictly sequential submission pipeline: passport
// photo upload, then the first academic document, then the record
// insert. The first failing step aborts the whole submission; files
// already uploaded by an aborted run are left in place. The
// confirmation email is sent in the background and its outcome never
// affects the result.
func (s *registrationService) Submit(ctx context.Context, draft *workflow.Draft) (*models.Registration, error) {
	if s.store == nil {
		return nil, apperrors.ErrStoreNotConfigured
	}
	if !draft.CanSubmit() {
		return nil, apperrors.ErrStageIncomplete
	}

	photo := draft.PassportPhoto
	photoPath, err := s.files.Save(bytes.NewReader(photo.Content), "photo", photo.Filename)
	if err != nil {
		s.logger.Error().Err(err).Str("draftID", draft.ID).Msg("Passport photo upload failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPhotoUploadFailed, err)
	}

	doc := draft.Documents[0]
	docsPath, err := s.files.Save(bytes.NewReader(doc.Content), "docs", doc.Filename)
	if err != nil {
		s.logger.Error().Err(err).Str("draftID", draft.ID).Msg("Academic document upload failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrDocumentUploadFailed, err)
	}

	reg := draft.Registration()
	reg.PassportPhotoURL = photoPath
	reg.AcademicDocsURL = docsPath

	id, err := s.store.Insert(ctx, reg)
	if err != nil {
		s.logger.Error().Err(err).Str("draftID", draft.ID).Msg("Registration insert failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRecordInsertFailed, err)
	}
	reg.ID = id

	go s.sendConfirmation(reg)

	draft.Complete()
	s.logger.Info().Int64("registrationID", id).Str("faculty", reg.TargetFaculty).Msg("Registration submitted")
	return reg, nil
}

// Summary returns the registration count per target faculty.
func (s *registrationService) Summary(ctx context.Context) (map[string]int64, error) {
	if s.store == nil {
		return nil, apperrors.ErrStoreNotConfigured
	}
	return s.store.CountByFaculty(ctx)
}

// sendConfirmation delivers the confirmation email best-effort, after
// the submission already succeeded.
func (s *registrationService) sendConfirmation(reg *models.Registration) {
	if s.mailer == nil {
		return
	}

	data := email.ConfirmationData{
		Email:      reg.Email,
		FirstName:  reg.FirstName,
		LastName:   reg.LastName,
		Faculty:    reg.TargetFaculty,
		Department: reg.TargetDepartment,
	}
	if err := s.mailer.SendConfirmationEmail(context.Background(), data); err != nil {
		s.logger.Warn().Err(err).Str("email", reg.Email).Msg("Confirmation email failed")
	}
}
