package model

type User struct {
	ID        int64  `json:"id"`
	LocalBody string `json:"localBody"`
	Pincode   string `json:"pincode"`
	IsAdmin   bool   `json:"is_admin"`
}
