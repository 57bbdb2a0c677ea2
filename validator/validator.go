package validator

// Validator is any type capable to validate and having Validate method attached.
type Validator interface {
	Validate() error
}

// Func adapts a plain function to Validator.
type Func func() error

// Validate implements Validator.
func (f Func) Validate() error {
	return f()
}

// Validate validates type v.
func Validate(v Validator) error {
	return v.Validate()
}

// First runs validators in order and returns the first error.
func First(validators ...Validator) error {
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
