package json

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// NamingPolicy represents a field name translation applied during encoding
// and decoding. Policies translate the declared Go field name; a field with
// an explicit json tag name keeps the tag name regardless of policy.
type NamingPolicy string

const (
	// PolicyIdentity keeps field names exactly as declared.
	PolicyIdentity NamingPolicy = "identity"

	// PolicyUpperCamelCase upper-cases the first letter: SomeField.
	PolicyUpperCamelCase NamingPolicy = "upper_camel_case"

	// PolicyLowerCaseWithUnderscores separates camel-case words with
	// underscores and lower-cases: some_field. This is the default.
	PolicyLowerCaseWithUnderscores NamingPolicy = "lower_case_with_underscores"

	// PolicyLowerCaseWithDashes separates camel-case words with dashes and
	// lower-cases: some-field.
	PolicyLowerCaseWithDashes NamingPolicy = "lower_case_with_dashes"

	// PolicyLowerCaseWithDots separates camel-case words with dots and
	// lower-cases: some.field.
	PolicyLowerCaseWithDots NamingPolicy = "lower_case_with_dots"
)

// validNamingPolicies contains all valid naming policies for validation.
var validNamingPolicies = map[NamingPolicy]bool{
	PolicyIdentity:                 true,
	PolicyUpperCamelCase:           true,
	PolicyLowerCaseWithUnderscores: true,
	PolicyLowerCaseWithDashes:      true,
	PolicyLowerCaseWithDots:        true,
}

// IsValidNamingPolicy returns true if the policy is a known naming policy.
func IsValidNamingPolicy(p NamingPolicy) bool {
	return validNamingPolicies[p]
}

// translate applies the policy to a declared field name.
func (p NamingPolicy) translate(name string) string {
	switch p {
	case PolicyUpperCamelCase:
		return upperCaseFirstLetter(name)
	case PolicyLowerCaseWithUnderscores:
		return strings.ToLower(separateCamelCase(name, "_"))
	case PolicyLowerCaseWithDashes:
		return strings.ToLower(separateCamelCase(name, "-"))
	case PolicyLowerCaseWithDots:
		return strings.ToLower(separateCamelCase(name, "."))
	default:
		return name
	}
}

// separateCamelCase inserts sep before every upper-case rune except the
// first. Consecutive capitals separate individually: UserID becomes
// User_I_D.
func separateCamelCase(name, sep string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// upperCaseFirstLetter upper-cases the first letter rune, leaving any
// non-letter prefix in place.
func upperCaseFirstLetter(name string) string {
	for i, r := range name {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			return name
		}
		return name[:i] + string(unicode.ToUpper(r)) + name[i+utf8.RuneLen(r):]
	}
	return name
}

// namingExtension renames struct fields through the policy. Fields with an
// explicit json tag name, unexported fields, and fields already hidden by
// an earlier extension are left untouched.
type namingExtension struct {
	jsoniter.DummyExtension
	policy NamingPolicy
}

func (x *namingExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		if len(binding.FromNames) == 0 && len(binding.ToNames) == 0 {
			continue
		}
		if explicitTagName(binding.Field.Tag()) != "" {
			continue
		}
		name := x.policy.translate(binding.Field.Name())
		binding.FromNames = []string{name}
		binding.ToNames = []string{name}
	}
}

// explicitTagName extracts the name part of a json struct tag, if any.
func explicitTagName(tag reflect.StructTag) string {
	val, ok := tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(val, ",")
	return name
}
