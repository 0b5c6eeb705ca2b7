package models

// WasteCenter describes one waste-management facility shown by the
// nearby-center lookup.
type WasteCenter struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Distance    string   `json:"distance"`
	Type        string   `json:"type"`
	Hours       string   `json:"hours"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
}
