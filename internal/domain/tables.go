package domain

// Tables lists every model in dependency order. The production schema is
// owned by the store project; this slice exists for test databases.
var Tables = []interface{}{
	&Product{},
	&Customer{},
	&Order{},
	&OrderLine{},
}
