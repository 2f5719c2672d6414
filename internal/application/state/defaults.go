package state

import "github.com/tu-usuario/estoque-pro/internal/domain/entity"

// Seeds de primera ejecución: se usan cuando el store no tiene nada
// persistido bajo la clave correspondiente.

func seedUsers() []entity.User {
	return []entity.User{
		{ID: "user-1", Username: "admin", Password: "admin123", Role: entity.RoleAdmin},
		{ID: "user-2", Username: "usuario", Password: "usuario123", Role: entity.RoleCommon},
	}
}

func seedCategories() []string {
	return []string{"CAIXA", "KG", "PACOTE", "UNITÁRIO"}
}

func seedLocations() []string {
	return []string{"Cozinha", "Estoque Principal", "Garagem", "Matriz", "Unidade"}
}

func seedSuppliers() []entity.Supplier {
	return []entity.Supplier{
		{ID: "sup-1", Name: "Fornecedor Padrão", ContactPerson: "Carlos Silva", Email: "contato@fornecedor.com", Phone: "(11) 98765-4321"},
		{ID: "sup-2", Name: "Distribuidora Veloz", ContactPerson: "Ana Costa", Email: "vendas@veloz.com", Phone: "(21) 91234-5678"},
	}
}
