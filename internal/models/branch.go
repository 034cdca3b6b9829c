package models

type Branch struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
