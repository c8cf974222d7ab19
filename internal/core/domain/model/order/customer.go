package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
)

// Address is the customer's shipping address. All fields are optional;
// the address carries no invariants of its own.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// Customer is a value object identifying who placed an order.
// Name, email, and phone are required; the address is optional.
// Customer data is captured at order time and never edited afterwards.
type Customer struct {
	name    string
	email   string
	phone   string
	address Address
}

// NewCustomer creates a Customer with validation.
// Returns an error listing every missing required field.
func NewCustomer(name, email, phone string, address Address) (Customer, error) {
	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer name"))
	}
	if email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer email"))
	}
	if phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer phone"))
	}
	if err := errors.Join(errList...); err != nil {
		return Customer{}, err
	}

	return Customer{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
	}, nil
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the customer's shipping address.
func (c Customer) Address() Address {
	return c.address
}
