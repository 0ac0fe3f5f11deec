package models

// Gender of the candidate.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Valid reports whether the gender value is accepted.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// MaritalStatus of the candidate, in the labels used on the site.
type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "Célibataire"
	MaritalMarried   MaritalStatus = "Marié(e)"
	MaritalDivorced  MaritalStatus = "Divorcé(e)"
	MaritalSeparated MaritalStatus = "Séparé(e)"
	MaritalWidowed   MaritalStatus = "Veuf(ve)"
)

// Valid reports whether the marital status value is accepted.
func (m MaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalSeparated, MaritalWidowed:
		return true
	}
	return false
}

// Identity holds the civil-status fields of a candidate. All fields are
// required before the workflow may leave the identity stage.
type Identity struct {
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	MiddleName    string        `json:"middleName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Gender        Gender        `json:"gender"`
	MaritalStatus MaritalStatus `json:"maritalStatus"`
	BirthDate     string        `json:"birthDate"`
	BirthPlace    string        `json:"birthPlace"`
}

// Academic holds the previous school and the faculty/department choice.
// The department must belong to the chosen faculty's department list.
type Academic struct {
	PreviousSchool   string `json:"previousSchool"`
	TargetFaculty    string `json:"targetFaculty"`
	TargetDepartment string `json:"targetDepartment"`
}

// Registration is the record persisted once an admission workflow is
// submitted. The two URL fields hold the storage paths returned by the
// object store for the passport photo and the first academic document.
type Registration struct {
	ID               int64         `json:"id"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	MiddleName       string        `json:"middleName"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Gender           Gender        `json:"gender"`
	MaritalStatus    MaritalStatus `json:"maritalStatus"`
	BirthDate        string        `json:"birthDate"`
	BirthPlace       string        `json:"birthPlace"`
	PreviousSchool   string        `json:"previousSchool"`
	TargetFaculty    string        `json:"targetFaculty"`
	TargetDepartment string        `json:"targetDepartment"`
	PassportPhotoURL string        `json:"passportPhotoUrl"`
	AcademicDocsURL  string        `json:"academicDocsUrl"`
}
