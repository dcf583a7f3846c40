package model

// GoogleUserInfo is the profile payload of Google's userinfo endpoint.
type GoogleUserInfo struct {
	GID       string `json:"sub"`
	FirstName string `json:"given_name"`
	LastName  string `json:"family_name"`
	Email     string `json:"email"`
	Picture   string `json:"picture"`
}

// DisplayName joins the Google name parts, falling back to the mailbox
// part of the email address.
func (g GoogleUserInfo) DisplayName() string {
	switch {
	case g.FirstName != "" && g.LastName != "":
		return g.FirstName + " " + g.LastName
	case g.FirstName != "":
		return g.FirstName
	}
	for i, r := range g.Email {
		if r == '@' {
			return g.Email[:i]
		}
	}
	return g.Email
}
