// Package domain defines the security and trade model consumed by the
// conversion engine, the vocabulary types shared across resolvers, and the
// error taxonomy every conversion failure maps onto.
package domain

import "fmt"

// ReferenceNotFoundError reports an external identifier (underlying security,
// basket member, convention, region) that could not be resolved. Conversion
// stops at the first unresolved reference.
type ReferenceNotFoundError struct {
	ID string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("reference not found: %s", e.ID)
}

// InvalidFieldError reports a security or trade field whose value falls
// outside the documented domain (e.g. an unrecognized option exercise type).
type InvalidFieldError struct {
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

// UnsupportedVariantError reports a security or frequency variant with no
// registered conversion rule.
type UnsupportedVariantError struct {
	Variant string
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("no conversion rule for variant %s", e.Variant)
}

// NotImplementedError reports a documented-but-unbuilt variant, such as the
// simple-compounded zero deposit. Unlike UnsupportedVariantError the variant
// is known to the model, there is just no mapping for it.
type NotImplementedError struct {
	Variant string
	Reason  string
}

func (e *NotImplementedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("conversion not implemented for %s", e.Variant)
	}
	return fmt.Sprintf("conversion not implemented for %s: %s", e.Variant, e.Reason)
}

// WrongSecurityTypeError reports a trade whose security variant does not match
// the converter it was handed to.
type WrongSecurityTypeError struct {
	Want string
	Got  string
}

func (e *WrongSecurityTypeError) Error() string {
	return fmt.Sprintf("wrong security type: want %s, got %s", e.Want, e.Got)
}

// MissingTradeFieldError reports a required trade datum (premium, trade date)
// that is absent. Financially meaningful fields are never defaulted.
type MissingTradeFieldError struct {
	Field string
}

func (e *MissingTradeFieldError) Error() string {
	return fmt.Sprintf("required trade field missing: %s", e.Field)
}
