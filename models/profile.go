package models

// UserProfile carries arbitrary profile fields keyed by email. The whole
// document is upserted as a top-level field union with whatever already
// exists, so it stays schemaless on purpose.
type UserProfile map[string]interface{}

// Email returns the profile's email key, or "" when absent or not a string.
func (p UserProfile) Email() string {
	email, _ := p["email"].(string)
	return email
}
