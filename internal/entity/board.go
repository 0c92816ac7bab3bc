package entity

type Board struct {
	ID      ID     `json:"id"`
	Title   string `json:"title"`
	OwnerID ID     `json:"owner_id"`
}
