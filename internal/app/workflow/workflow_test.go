package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
)

func validIdentity() models.Identity {
	return models.Identity{
		FirstName:     "Jean",
		LastName:      "Kabila",
		MiddleName:    "Mwamba",
		Email:         "jean@example.com",
		Phone:         "+243970000000",
		Gender:        models.GenderMale,
		MaritalStatus: models.MaritalSingle,
		BirthDate:     "2004-03-12",
		BirthPlace:    "Goma",
	}
}

func documentsStageDraft(t *testing.T) *Draft {
	t.Helper()
	draft := NewStore().Create()
	require.NoError(t, draft.SetIdentity(validIdentity()))
	require.NoError(t, draft.SetAcademic(models.Academic{
		PreviousSchool:   "Institut de Goma",
		TargetFaculty:    "Polytechnique",
		TargetDepartment: "Génie Civil",
	}))
	require.Equal(t, StageDocuments, draft.Stage)
	return draft
}

func TestSetIdentity(t *testing.T) {
	t.Run("advances to the academic stage", func(t *testing.T) {
		draft := NewStore().Create()
		require.NoError(t, draft.SetIdentity(validIdentity()))
		assert.Equal(t, StageAcademic, draft.Stage)
		assert.Equal(t, "Jean", draft.Identity.FirstName)
	})

	t.Run("rejects a missing field", func(t *testing.T) {
		draft := NewStore().Create()
		identity := validIdentity()
		identity.BirthPlace = ""
		assert.ErrorIs(t, draft.SetIdentity(identity), apperrors.ErrStageIncomplete)
		assert.Equal(t, StageIdentity, draft.Stage)
	})

	t.Run("rejects an invalid enum value", func(t *testing.T) {
		draft := NewStore().Create()
		identity := validIdentity()
		identity.Gender = "X"
		assert.ErrorIs(t, draft.SetIdentity(identity), apperrors.ErrValidationFailed)
	})

	t.Run("rejects re-entry from a later stage", func(t *testing.T) {
		draft := documentsStageDraft(t)
		assert.ErrorIs(t, draft.SetIdentity(validIdentity()), apperrors.ErrInvalidTransition)
	})
}

func TestSetAcademic(t *testing.T) {
	academicDraft := func(t *testing.T) *Draft {
		t.Helper()
		draft := NewStore().Create()
		require.NoError(t, draft.SetIdentity(validIdentity()))
		return draft
	}

	t.Run("advances once school and department are set", func(t *testing.T) {
		draft := academicDraft(t)
		require.NoError(t, draft.SetAcademic(models.Academic{
			PreviousSchool:   "Institut de Goma",
			TargetFaculty:    "Polytechnique",
			TargetDepartment: "Génie Informatique",
		}))
		assert.Equal(t, StageDocuments, draft.Stage)
	})

	t.Run("stays in place without a department", func(t *testing.T) {
		draft := academicDraft(t)
		require.NoError(t, draft.SetAcademic(models.Academic{
			PreviousSchool: "Institut de Goma",
			TargetFaculty:  "Polytechnique",
		}))
		assert.Equal(t, StageAcademic, draft.Stage)
	})

	t.Run("unknown faculty is rejected", func(t *testing.T) {
		draft := academicDraft(t)
		err := draft.SetAcademic(models.Academic{
			PreviousSchool: "Institut de Goma",
			TargetFaculty:  "Théologie",
		})
		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	})

	t.Run("fresh department outside the faculty is rejected", func(t *testing.T) {
		draft := academicDraft(t)
		err := draft.SetAcademic(models.Academic{
			PreviousSchool:   "Institut de Goma",
			TargetFaculty:    "Management",
			TargetDepartment: "Génie Civil",
		})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentMismatch)
	})

	t.Run("changing faculty invalidates the stored department", func(t *testing.T) {
		draft := documentsStageDraft(t)
		require.NoError(t, draft.Back())

		// Same department as before, new faculty: the stale choice is
		// cleared instead of rejected.
		require.NoError(t, draft.SetAcademic(models.Academic{
			PreviousSchool:   "Institut de Goma",
			TargetFaculty:    "Management",
			TargetDepartment: "Génie Civil",
		}))
		assert.Empty(t, draft.Academic.TargetDepartment)
		assert.Equal(t, StageAcademic, draft.Stage)
	})

	t.Run("clearing the faculty clears the department", func(t *testing.T) {
		draft := academicDraft(t)
		require.NoError(t, draft.SetAcademic(models.Academic{
			PreviousSchool:   "Institut de Goma",
			TargetDepartment: "Génie Civil",
		}))
		assert.Empty(t, draft.Academic.TargetDepartment)
	})
}

func TestAttachPhoto(t *testing.T) {
	t.Run("accepts an image under the size limit", func(t *testing.T) {
		draft := documentsStageDraft(t)
		err := draft.AttachPhoto(Attachment{Filename: "me.jpg", ContentType: "image/jpeg", Size: 1024})
		require.NoError(t, err)
		assert.NotNil(t, draft.PassportPhoto)
	})

	t.Run("rejects an oversized photo and keeps the prior one", func(t *testing.T) {
		draft := documentsStageDraft(t)
		require.NoError(t, draft.AttachPhoto(Attachment{Filename: "ok.png", Size: 100}))

		err := draft.AttachPhoto(Attachment{Filename: "big.png", Size: MaxPhotoSize + 1})
		assert.ErrorIs(t, err, apperrors.ErrPhotoTooLarge)
		assert.Equal(t, "ok.png", draft.PassportPhoto.Filename)
	})

	t.Run("rejects a non-image file", func(t *testing.T) {
		draft := documentsStageDraft(t)
		err := draft.AttachPhoto(Attachment{Filename: "cv.pdf", ContentType: "application/pdf", Size: 100})
		assert.ErrorIs(t, err, apperrors.ErrPhotoNotImage)
		assert.Nil(t, draft.PassportPhoto)
	})

	t.Run("falls back to the extension when no content type is set", func(t *testing.T) {
		draft := documentsStageDraft(t)
		require.NoError(t, draft.AttachPhoto(Attachment{Filename: "photo.WEBP", Size: 100}))
	})

	t.Run("rejected outside the documents stage", func(t *testing.T) {
		draft := NewStore().Create()
		err := draft.AttachPhoto(Attachment{Filename: "me.jpg", Size: 100})
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})
}

func TestAttachDocuments(t *testing.T) {
	t.Run("requires at least one file", func(t *testing.T) {
		draft := documentsStageDraft(t)
		assert.ErrorIs(t, draft.AttachDocuments(nil), apperrors.ErrDocumentsMissing)
	})

	t.Run("stores the set", func(t *testing.T) {
		draft := documentsStageDraft(t)
		require.NoError(t, draft.AttachDocuments([]Attachment{{Filename: "diplome.pdf"}}))
		assert.Len(t, draft.Documents, 1)
	})
}

func TestBackAndSubmit(t *testing.T) {
	t.Run("back walks the stages in reverse", func(t *testing.T) {
		draft := documentsStageDraft(t)
		require.NoError(t, draft.Back())
		assert.Equal(t, StageAcademic, draft.Stage)
		require.NoError(t, draft.Back())
		assert.Equal(t, StageIdentity, draft.Stage)
		assert.ErrorIs(t, draft.Back(), apperrors.ErrInvalidTransition)

		// Data survives going back.
		assert.Equal(t, "Jean", draft.Identity.FirstName)
		assert.Equal(t, "Polytechnique", draft.Academic.TargetFaculty)
	})

	t.Run("confirmation is terminal", func(t *testing.T) {
		draft := documentsStageDraft(t)
		draft.Complete()
		assert.Equal(t, StageConfirmation, draft.Stage)
		assert.ErrorIs(t, draft.Back(), apperrors.ErrInvalidTransition)
	})

	t.Run("can submit only with photo and documents", func(t *testing.T) {
		draft := documentsStageDraft(t)
		assert.False(t, draft.CanSubmit())

		require.NoError(t, draft.AttachPhoto(Attachment{Filename: "me.jpg", Size: 100}))
		assert.False(t, draft.CanSubmit())

		require.NoError(t, draft.AttachDocuments([]Attachment{{Filename: "diplome.pdf"}}))
		assert.True(t, draft.CanSubmit())
	})
}

func TestAvailableDepartments(t *testing.T) {
	draft := NewStore().Create()
	assert.Empty(t, draft.AvailableDepartments())

	require.NoError(t, draft.SetIdentity(validIdentity()))
	require.NoError(t, draft.SetAcademic(models.Academic{
		PreviousSchool: "Institut de Goma",
		TargetFaculty:  "Sciences Agronomiques",
	}))
	assert.Equal(t, []string{"Phytotechnie", "Zootechnie", "Gestion de l'Environnement"}, draft.AvailableDepartments())
}

func TestStore(t *testing.T) {
	t.Run("update reaches the stored draft", func(t *testing.T) {
		store := NewStore()
		draft := store.Create()

		err := store.Update(draft.ID, func(d *Draft) error {
			return d.SetIdentity(validIdentity())
		})
		require.NoError(t, err)

		var stage Stage
		require.NoError(t, store.View(draft.ID, func(d *Draft) {
			stage = d.Stage
		}))
		assert.Equal(t, StageAcademic, stage)
	})

	t.Run("unknown draft is reported", func(t *testing.T) {
		store := NewStore()
		err := store.Update("missing", func(d *Draft) error { return nil })
		assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
	})

	t.Run("remove discards the draft", func(t *testing.T) {
		store := NewStore()
		draft := store.Create()
		store.Remove(draft.ID)
		assert.ErrorIs(t, store.View(draft.ID, func(*Draft) {}), apperrors.ErrDraftNotFound)
	})
}
