package models

// User is a user record as served by /users.
type User struct {
	UserKey   string `json:"userKey,omitempty"`
	ID        ID     `json:"id,omitempty"`
	LoginID   string `json:"loginId"`
	Name      string `json:"name"`
	UserType  string `json:"userType"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ResourceKey returns userKey, or id for servers that only send that.
func (u User) ResourceKey() string {
	if u.UserKey != "" {
		return u.UserKey
	}
	return u.ID.String()
}
