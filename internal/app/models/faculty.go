package models

// Faculty represents a faculty of the university together with its
// ordered department list. Faculties are a static catalog entry and
// are read-only everywhere in the application.
type Faculty struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Departments []string `json:"departments"`
}

// HasDepartment reports whether the department belongs to this faculty.
func (f *Faculty) HasDepartment(name string) bool {
	for _, d := range f.Departments {
		if d == name {
			return true
		}
	}
	return false
}
