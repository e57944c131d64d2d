package entity

// Customer representa un cliente del directorio (datos de referencia
// estáticos; sin mutación).
type Customer struct {
	ID      string
	Name    string
	TaxID   string // CNPJ o CPF
	Phone   string
	Email   string
	Address string
}
