package request_models

type UpsertProfileRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Birthday   string `json:"birthday"` // YYYY-MM-DD
	SkillLevel string `json:"skill_level"`
	// Optional password change alongside the profile save.
	Password string `json:"password,omitempty"`
}
