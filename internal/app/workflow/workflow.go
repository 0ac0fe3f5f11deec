// Package workflow implements the admission intake state machine: a
// strictly linear sequence of identity, academic-choice and
// document-upload stages ending in a terminal confirmation. Drafts are
// held server-side until submission and discarded afterwards.
package workflow

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
)

// Stage is one state of the admission workflow.
type Stage string

const (
	StageIdentity     Stage = "IDENTITY"
	StageAcademic     Stage = "ACADEMIC"
	StageDocuments    Stage = "DOCUMENTS"
	StageConfirmation Stage = "CONFIRMATION"
)

// MaxPhotoSize is the client-side limit on the passport photo.
const MaxPhotoSize = 5 * 1024 * 1024

// imageExtensions whitelists the passport photo file types accepted
// when no content type is declared.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// Attachment is a candidate file buffered in the draft until submission.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// Draft is one in-progress admission. Methods are not safe for
// concurrent use; the Store serializes access.
type Draft struct {
	ID            string
	Stage         Stage
	Identity      models.Identity
	Academic      models.Academic
	PassportPhoto *Attachment
	Documents     []Attachment
	CreatedAt     time.Time
}

// SetIdentity records the identity stage and advances to the academic
// stage. All fields are required; there are no cross-field checks.
func (d *Draft) SetIdentity(identity models.Identity) error {
	if d.Stage != StageIdentity {
		return apperrors.ErrInvalidTransition
	}

	if identity.FirstName == "" || identity.LastName == "" || identity.MiddleName == "" ||
		identity.Email == "" || identity.Phone == "" ||
		identity.BirthDate == "" || identity.BirthPlace == "" {
		return apperrors.ErrStageIncomplete
	}
	if !identity.Gender.Valid() || !identity.MaritalStatus.Valid() {
		return apperrors.ErrValidationFailed
	}

	d.Identity = identity
	d.Stage = StageAcademic
	return nil
}

// SetAcademic records the academic stage. The faculty must exist in the
// catalog; a department is only kept when it belongs to the chosen
// faculty, so changing faculty invalidates a stale choice. The draft
// advances to the documents stage once both are set.
func (d *Draft) SetAcademic(academic models.Academic) error {
	if d.Stage != StageAcademic {
		return apperrors.ErrInvalidTransition
	}

	if academic.TargetFaculty == "" {
		// No faculty means no department options at all.
		academic.TargetDepartment = ""
		d.Academic = academic
		return nil
	}

	faculty, ok := models.FacultyByName(academic.TargetFaculty)
	if !ok {
		return apperrors.ErrFacultyNotFound
	}

	if academic.TargetDepartment != "" && !faculty.HasDepartment(academic.TargetDepartment) {
		if academic.TargetDepartment == d.Academic.TargetDepartment {
			// Stale choice carried over from a previously selected
			// faculty: invalidated, not rejected.
			academic.TargetDepartment = ""
		} else {
			return apperrors.ErrDepartmentMismatch
		}
	}

	d.Academic = academic
	if academic.TargetDepartment != "" && academic.PreviousSchool != "" {
		d.Stage = StageDocuments
	}
	return nil
}

// AttachPhoto stores the passport photo. Oversized or non-image files
// are rejected without touching the prior state.
func (d *Draft) AttachPhoto(att Attachment) error {
	if d.Stage != StageDocuments {
		return apperrors.ErrInvalidTransition
	}
	if att.Size > MaxPhotoSize {
		return apperrors.ErrPhotoTooLarge
	}
	if !isImage(att) {
		return apperrors.ErrPhotoNotImage
	}

	d.PassportPhoto = &att
	return nil
}

// AttachDocuments stores the academic document set. At least one file
// is required; only the first is used at submission.
func (d *Draft) AttachDocuments(atts []Attachment) error {
	if d.Stage != StageDocuments {
		return apperrors.ErrInvalidTransition
	}
	if len(atts) == 0 {
		return apperrors.ErrDocumentsMissing
	}

	d.Documents = atts
	return nil
}

// Back re-enters the previous stage without clearing its data. The
// terminal confirmation stage cannot be left.
func (d *Draft) Back() error {
	switch d.Stage {
	case StageAcademic:
		d.Stage = StageIdentity
	case StageDocuments:
		d.Stage = StageAcademic
	default:
		return apperrors.ErrInvalidTransition
	}
	return nil
}

// CanSubmit reports whether the draft satisfies the documents-stage
// requirements: both the photo and at least one document present.
func (d *Draft) CanSubmit() bool {
	return d.Stage == StageDocuments && d.PassportPhoto != nil && len(d.Documents) > 0
}

// Complete marks the draft as successfully submitted.
func (d *Draft) Complete() {
	d.Stage = StageConfirmation
}

// AvailableDepartments returns exactly the chosen faculty's department
// list, or nothing when no faculty is chosen.
func (d *Draft) AvailableDepartments() []string {
	faculty, ok := models.FacultyByName(d.Academic.TargetFaculty)
	if !ok {
		return []string{}
	}
	return faculty.Departments
}

// Registration builds the record persisted at submission. Storage paths
// are filled in by the submission orchestration.
func (d *Draft) Registration() *models.Registration {
	return &models.Registration{
		FirstName:        d.Identity.FirstName,
		LastName:         d.Identity.LastName,
		MiddleName:       d.Identity.MiddleName,
		Email:            d.Identity.Email,
		Phone:            d.Identity.Phone,
		Gender:           d.Identity.Gender,
		MaritalStatus:    d.Identity.MaritalStatus,
		BirthDate:        d.Identity.BirthDate,
		BirthPlace:       d.Identity.BirthPlace,
		PreviousSchool:   d.Academic.PreviousSchool,
		TargetFaculty:    d.Academic.TargetFaculty,
		TargetDepartment: d.Academic.TargetDepartment,
	}
}

func isImage(att Attachment) bool {
	if att.ContentType != "" {
		return strings.HasPrefix(att.ContentType, "image/")
	}
	return imageExtensions[strings.ToLower(filepath.Ext(att.Filename))]
}
