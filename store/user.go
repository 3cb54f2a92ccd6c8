package store

type User struct {
	ID           int32
	UID          string
	Username     string
	Nickname     string
	PasswordHash string
	CreatedTs    int64
}

type FindUser struct {
	ID       *int32
	UID      *string
	Username *string
}
