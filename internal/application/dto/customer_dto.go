package dto

// CustomerResponse salida de un cliente del directorio.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomerListResponse snapshot del directorio de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
