package repository

// Models lists every table owned by the relational store, in migration order.
func Models() []any {
	return []any{
		&userModel{},
		&clientModel{},
		&budgetModel{},
		&projectModel{},
		&contractModel{},
		&paymentModel{},
		&scheduleModel{},
	}
}
