package entity

// Supplier es un proveedor; los productos lo referencian por ID en SupplierIDs.
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}
