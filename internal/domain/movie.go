package domain

type MovieType string

const (
	MovieTypeRegular    MovieType = "REGULAR"
	MovieTypeChildrens  MovieType = "CHILDRENS"
	MovieTypeNewRelease MovieType = "NEW_RELEASE"
)

// Valid reports whether t is one of the known movie types
func (t MovieType) Valid() bool {
	switch t {
	case MovieTypeRegular, MovieTypeChildrens, MovieTypeNewRelease:
		return true
	}
	return false
}

// Movie is a catalog entry. Rentals copy it by value, so it is never mutated
// once rented.
type Movie struct {
	ID    int
	Title string
	Price float64
	Type  MovieType
}
