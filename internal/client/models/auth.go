package models

// UserProfile is the identity snapshot held by the session. It is not a
// full User record.
type UserProfile struct {
	LoginID  string `json:"loginId"`
	Name     string `json:"name"`
	UserType string `json:"userType"`
}

type SignInRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

// SignInResponse is the body of a successful sign-in. Only Token is
// required; absent profile fields decode as "".
type SignInResponse struct {
	Token    string `json:"token"`
	LoginID  string `json:"loginId"`
	Name     string `json:"name"`
	UserType string `json:"userType"`
}

// Profile extracts the identity snapshot from the response.
func (r SignInResponse) Profile() UserProfile {
	return UserProfile{LoginID: r.LoginID, Name: r.Name, UserType: r.UserType}
}
