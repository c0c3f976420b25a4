package models

type Car struct {
	ID      int64
	Name    string
	Details string
	Price   float64
}
