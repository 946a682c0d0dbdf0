package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&SessionModel{},
		&CategoryModel{},
		&ProductModel{},
		&PostModel{},
		&CartItemModel{},
		&OrderModel{},
		&ConsultationModel{},
	}
}
