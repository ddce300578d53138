package internal

// Models lists every table of the consignment context in dependency order.
func Models() []any {
	return []any{
		&FieldTemplate{},
		&Consignment{},
		&Measurement{},
	}
}
