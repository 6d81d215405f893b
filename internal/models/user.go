package models

// UserProfile holds the identity captured at onboarding. Goal updates must
// never erase these fields.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DailyLog maps an ISO 8601 date string to the meals logged that day. Keys
// are created lazily on the first entry for a date.
type DailyLog map[string]Meal

// UserData is the entire persisted document. It does not exist until
// onboarding completes; afterwards user, goal and log are each independently
// replaceable. Goal stays nil until the user sets one.
type UserData struct {
	User UserProfile `json:"user"`
	Goal *Goal       `json:"goal"`
	Log  DailyLog    `json:"log"`
}
