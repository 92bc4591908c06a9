package domain

type Customer struct {
	ID      int
	Name    string
	Rentals []*Rental
}

func NewCustomer(id int, name string) *Customer {
	return &Customer{ID: id, Name: name}
}

// AddRental appends a rental. The same rental may be added more than once and
// each addition is billed.
func (c *Customer) AddRental(rental *Rental) {
	c.Rentals = append(c.Rentals, rental)
}
