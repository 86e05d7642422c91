package catalog

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidForm is returned by Form.Parse when the name is empty after
// trimming or a numeric field does not parse. It is a local validation
// failure: no request is sent and the shared error banner is not touched.
var ErrInvalidForm = errors.New("catalog: please provide valid name, weight and price")

// Form holds the raw text of the three edit fields.
type Form struct {
	Name   string
	Weight string
	Price  string
}

// FormFromProduct pre-populates a form for edit mode, converting the numeric
// fields to text.
func FormFromProduct(p Product) Form {
	return Form{
		Name:   p.Name,
		Weight: strconv.FormatFloat(p.Weight, 'f', -1, 64),
		Price:  strconv.FormatFloat(p.Price, 'f', -1, 64),
	}
}

// Parse trims the name and parses both numeric fields. Returns
// ErrInvalidForm when the name is empty or either number fails to parse;
// range checks (non-negative weight and price) stay with the server.
func (f Form) Parse() (ProductFields, error) {
	name := strings.TrimSpace(f.Name)
	weight, weightErr := strconv.ParseFloat(strings.TrimSpace(f.Weight), 64)
	price, priceErr := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)

	if name == "" || weightErr != nil || priceErr != nil {
		return ProductFields{}, ErrInvalidForm
	}
	return ProductFields{Name: name, Weight: weight, Price: price}, nil
}
