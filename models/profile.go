package models

// Profile is the public view of a user as seen by another (possibly
// anonymous) user. Following reports whether the viewer follows this user;
// it is always false for anonymous viewers and for a user viewing
// themselves.
type Profile struct {
	Username  string  `json:"username"`
	Bio       string  `json:"bio"`
	Image     *string `json:"image"`
	Following bool    `json:"following"`
}
