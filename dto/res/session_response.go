package res

// SessionResponse is what a successful login or registration hands back:
// the signed session token plus the identity it belongs to.
type SessionResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}
