package dto

// CreateCourseRequest represents course creation data. Clients historically
// sent both short and prefixed field names (code/course_code,
// name/course_name); both are accepted here and normalized before the
// service layer ever sees them.
type CreateCourseRequest struct {
	Code        string `json:"code"`
	CourseCode  string `json:"course_code"`
	Name        string `json:"name"`
	CourseName  string `json:"course_name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// Normalize resolves field-name aliases into the canonical code/name pair.
// The short names win when both are present.
func (r *CreateCourseRequest) Normalize() {
	if r.Code == "" {
		r.Code = r.CourseCode
	}
	if r.Name == "" {
		r.Name = r.CourseName
	}
}

// UpdateCourseRequest represents a partial course update
type UpdateCourseRequest struct {
	Code        *string `json:"code,omitempty"`
	CourseCode  *string `json:"course_code,omitempty"`
	Name        *string `json:"name,omitempty"`
	CourseName  *string `json:"course_name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// Normalize resolves field-name aliases into the canonical code/name pair.
func (r *UpdateCourseRequest) Normalize() {
	if r.Code == nil {
		r.Code = r.CourseCode
	}
	if r.Name == nil {
		r.Name = r.CourseName
	}
}

// Empty reports whether the request carries no updatable fields.
func (r *UpdateCourseRequest) Empty() bool {
	return r.Code == nil && r.Name == nil && r.Description == nil && r.IsActive == nil
}

// EnrollRequest enrolls a user into a course
type EnrollRequest struct {
	UserID int64  `json:"userId" binding:"required,min=1"`
	Role   string `json:"role,omitempty"` // defaults to student
}
