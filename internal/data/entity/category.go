package entity

type Category struct {
	BaseNoDelete
	Name string `db:"name"`
}
