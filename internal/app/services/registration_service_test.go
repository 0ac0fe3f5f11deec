package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/app/workflow"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
	"github.com/upgoma/upg-portal/internal/pkg/email"
)

type fakeStorage struct {
	saved   []string // kinds, in call order
	failOn  string   // kind that fails, empty for none
	deleted []string
}

func (f *fakeStorage) Save(r io.Reader, kind, originalName string) (string, error) {
	if f.failOn == kind {
		return "", errors.New("bucket unavailable")
	}
	f.saved = append(f.saved, kind)
	return fmt.Sprintf("public/%s-1-abc.bin", kind), nil
}

func (f *fakeStorage) DeleteFile(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}

type fakeRegistrationStore struct {
	inserted  []*models.Registration
	insertErr error
	counts    map[string]int64
}

func (f *fakeRegistrationStore) Insert(ctx context.Context, reg *models.Registration) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, reg)
	return int64(len(f.inserted)), nil
}

func (f *fakeRegistrationStore) CountByFaculty(ctx context.Context) (map[string]int64, error) {
	return f.counts, nil
}

type fakeMailer struct {
	sent chan email.ConfirmationData
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan email.ConfirmationData, 1)}
}

func (f *fakeMailer) SendConfirmationEmail(ctx context.Context, data email.ConfirmationData) error {
	f.sent <- data
	return nil
}

func submittableDraft(t *testing.T) *workflow.Draft {
	t.Helper()
	draft := workflow.NewStore().Create()
	require.NoError(t, draft.SetIdentity(models.Identity{
		FirstName:     "Jean",
		LastName:      "Kabila",
		MiddleName:    "Mwamba",
		Email:         "jean@example.com",
		Phone:         "+243970000000",
		Gender:        models.GenderMale,
		MaritalStatus: models.MaritalSingle,
		BirthDate:     "2004-03-12",
		BirthPlace:    "Goma",
	}))
	require.NoError(t, draft.SetAcademic(models.Academic{
		PreviousSchool:   "Institut de Goma",
		TargetFaculty:    "Polytechnique",
		TargetDepartment: "Génie Civil",
	}))
	require.NoError(t, draft.AttachPhoto(workflow.Attachment{
		Filename: "me.jpg", ContentType: "image/jpeg", Size: 4, Content: []byte("fake"),
	}))
	require.NoError(t, draft.AttachDocuments([]workflow.Attachment{
		{Filename: "diplome.pdf", ContentType: "application/pdf", Size: 4, Content: []byte("fake")},
	}))
	return draft
}

func TestRegistrationSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the pipeline in order and completes the draft", func(t *testing.T) {
		storage := &fakeStorage{}
		store := &fakeRegistrationStore{}
		mailer := newFakeMailer()
		svc := NewRegistrationService(store, storage, mailer, zerolog.Nop())

		draft := submittableDraft(t)
		reg, err := svc.Submit(ctx, draft)
		require.NoError(t, err)

		assert.Equal(t, []string{"photo", "docs"}, storage.saved)
		require.Len(t, store.inserted, 1)
		assert.Equal(t, "public/photo-1-abc.bin", reg.PassportPhotoURL)
		assert.Equal(t, "public/docs-1-abc.bin", reg.AcademicDocsURL)
		assert.Equal(t, int64(1), reg.ID)
		assert.Equal(t, workflow.StageConfirmation, draft.Stage)

		select {
		case data := <-mailer.sent:
			assert.Equal(t, "jean@example.com", data.Email)
			assert.Equal(t, "Polytechnique", data.Faculty)
		case <-time.After(time.Second):
			t.Fatal("confirmation email was never sent")
		}
	})

	t.Run("no store rejects the submission", func(t *testing.T) {
		svc := NewRegistrationService(nil, &fakeStorage{}, newFakeMailer(), zerolog.Nop())
		_, err := svc.Submit(ctx, submittableDraft(t))
		assert.ErrorIs(t, err, apperrors.ErrStoreNotConfigured)
	})

	t.Run("incomplete draft is rejected", func(t *testing.T) {
		svc := NewRegistrationService(&fakeRegistrationStore{}, &fakeStorage{}, newFakeMailer(), zerolog.Nop())
		draft := workflow.NewStore().Create()
		_, err := svc.Submit(ctx, draft)
		assert.ErrorIs(t, err, apperrors.ErrStageIncomplete)
	})

	t.Run("photo upload failure aborts before the document upload", func(t *testing.T) {
		storage := &fakeStorage{failOn: "photo"}
		store := &fakeRegistrationStore{}
		svc := NewRegistrationService(store, storage, newFakeMailer(), zerolog.Nop())

		draft := submittableDraft(t)
		_, err := svc.Submit(ctx, draft)
		assert.ErrorIs(t, err, apperrors.ErrPhotoUploadFailed)
		assert.Empty(t, storage.saved)
		assert.Empty(t, store.inserted)
		assert.Equal(t, workflow.StageDocuments, draft.Stage)
	})

	t.Run("document upload failure aborts before the insert", func(t *testing.T) {
		storage := &fakeStorage{failOn: "docs"}
		store := &fakeRegistrationStore{}
		svc := NewRegistrationService(store, storage, newFakeMailer(), zerolog.Nop())

		draft := submittableDraft(t)
		_, err := svc.Submit(ctx, draft)
		assert.ErrorIs(t, err, apperrors.ErrDocumentUploadFailed)
		assert.Equal(t, []string{"photo"}, storage.saved)
		assert.Empty(t, store.inserted)
	})

	t.Run("insert failure leaves the draft resubmittable", func(t *testing.T) {
		storage := &fakeStorage{}
		store := &fakeRegistrationStore{insertErr: errors.New("constraint")}
		mailer := newFakeMailer()
		svc := NewRegistrationService(store, storage, mailer, zerolog.Nop())

		draft := submittableDraft(t)
		_, err := svc.Submit(ctx, draft)
		assert.ErrorIs(t, err, apperrors.ErrRecordInsertFailed)
		assert.Equal(t, workflow.StageDocuments, draft.Stage)
		assert.Empty(t, mailer.sent)

		// Uploaded files are left in place, there is no rollback.
		assert.Equal(t, []string{"photo", "docs"}, storage.saved)
		assert.Empty(t, storage.deleted)
	})
}

func TestRegistrationSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("returns counts per faculty", func(t *testing.T) {
		store := &fakeRegistrationStore{counts: map[string]int64{"Polytechnique": 3}}
		svc := NewRegistrationService(store, &fakeStorage{}, newFakeMailer(), zerolog.Nop())

		counts, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts["Polytechnique"])
	})

	t.Run("no store is reported", func(t *testing.T) {
		svc := NewRegistrationService(nil, &fakeStorage{}, newFakeMailer(), zerolog.Nop())
		_, err := svc.Summary(ctx)
		assert.ErrorIs(t, err, apperrors.ErrStoreNotConfigured)
	})
}
