package model

// Roles consumed from the external auth collaborator's token. The server
// trusts the claim; it does not manage users itself.
const (
	RoleRecruiter = "recruiter"
	RoleStudent   = "student"
)
