package model

// Dept is a department together with the batches cached under it.
type Dept struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Prods []Prod `json:"prods"`
}

// ProdModel is a kind of product that can be selected when creating a batch.
type ProdModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
