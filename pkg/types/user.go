package types

// User is an account allowed into the admin area. Password holds a bcrypt
// hash, never the plaintext.
type User struct {
	ID            int64   `json:"id"`
	Username      string  `json:"username"`
	PasswordHash  string  `json:"-"`
	LastLoginTime *string `json:"last_login_time,omitempty"`
	LastLoginIP   *string `json:"last_login_ip,omitempty"`
}
