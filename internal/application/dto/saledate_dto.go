package dto

// CreateSaleDateRequest entrada para cadastrar um dia de venda.
type CreateSaleDateRequest struct {
	Day string `json:"day" validate:"required,datetime=2006-01-02"`
}

// SaleDateResponse saída de um dia cadastrado.
type SaleDateResponse struct {
	ID  string `json:"id"`
	Day string `json:"day"` // YYYY-MM-DD
}

// SaleDateListResponse lista de dias em ordem cronológica.
type SaleDateListResponse struct {
	Items []SaleDateResponse `json:"items"`
	Total int                `json:"total"`
}
