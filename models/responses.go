package models

// DiaryListResponse wraps a list of diary entries with its length.
type DiaryListResponse struct {
	Diaries []DiaryEntry `json:"diaries"`
	Count   int          `json:"count"`
}

// AuthResponse is returned after a successful register or login.
// The same token is also set in the Authorization header.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	User        User   `json:"user"`
}
