package entity

// Category groups shops and products.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"categoryName"`
}
