package domain

import "errors"

// Reference errors: the request names a record that does not exist.
var ErrInvalidGenre = errors.New("invalid genre")
var ErrInvalidMovie = errors.New("invalid movie")
var ErrInvalidCustomer = errors.New("invalid customer")

// Lookup errors.
var ErrGenreNotFound = errors.New("genre not found")
var ErrMovieNotFound = errors.New("movie not found")
var ErrCustomerNotFound = errors.New("customer not found")
var ErrRentalNotFound = errors.New("rental not found")
var ErrUserNotFound = errors.New("user not found")

// Rental lifecycle errors.
var ErrOutOfStock = errors.New("movie not in stock")
var ErrAlreadyReturned = errors.New("return already processed")

// Auth errors.
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrForbidden = errors.New("access forbidden")
