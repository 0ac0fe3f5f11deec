package dto

import "github.com/upgoma/upg-portal/internal/app/models"

// IdentityRequest fills the identity stage of an admission draft. Every
// field is required; there are no cross-field checks at this stage.
type IdentityRequest struct {
	FirstName     string `json:"firstName" binding:"required,max=100"`
	LastName      string `json:"lastName" binding:"required,max=100"`
	MiddleName    string `json:"middleName" binding:"required,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,max=30"`
	Gender        string `json:"gender" binding:"required,oneof=M F"`
	MaritalStatus string `json:"maritalStatus" binding:"required"`
	BirthDate     string `json:"birthDate" binding:"required"`
	BirthPlace    string `json:"birthPlace" binding:"required,max=200"`
}

// AcademicRequest fills the academic stage. The department select is
// driven by the chosen faculty; membership is enforced by the workflow.
type AcademicRequest struct {
	PreviousSchool   string `json:"previousSchool" binding:"required,max=200"`
	TargetFaculty    string `json:"targetFaculty" binding:"required"`
	TargetDepartment string `json:"targetDepartment" binding:"omitempty"`
}

// DraftResponse reflects the current state of an admission draft.
type DraftResponse struct {
	ID                   string          `json:"id"`
	Stage                string          `json:"stage"`
	Identity             models.Identity `json:"identity"`
	Academic             models.Academic `json:"academic"`
	AvailableDepartments []string        `json:"availableDepartments"`
	HasPassportPhoto     bool            `json:"hasPassportPhoto"`
	HasDocuments         bool            `json:"hasDocuments"`
	CanSubmit            bool            `json:"canSubmit"`
}

// SubmitResponse confirms a successful admission submission, echoing the
// candidate name and faculty shown on the confirmation panel.
type SubmitResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Faculty   string `json:"faculty"`
	Message   string `json:"message"`
}
