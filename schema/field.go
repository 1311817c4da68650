package schema

// Converter turns a raw input value into the output value of a field.
type Converter func(raw any) (any, error)

// FieldSpec describes one declared field. It is immutable once the owning
// schema is built.
type FieldSpec struct {
	name          string
	inputKey      string
	kind          Kind
	ignoreEmpty   bool
	converterName string
	converter     Converter
	sub           *Schema
	override      TargetFunc
}

// Name is the output key.
func (f FieldSpec) Name() string { return f.name }

// InputKey is the key read from the input; it defaults to Name.
func (f FieldSpec) InputKey() string {
	if f.inputKey == "" {
		return f.name
	}

	return f.inputKey
}

func (f FieldSpec) Kind() Kind { return f.kind }

// IgnoreEmpty reports whether empty values are dropped (value fields only).
func (f FieldSpec) IgnoreEmpty() bool { return f.ignoreEmpty }

// ConverterName is the name passed to ConvertWith, or "".
func (f FieldSpec) ConverterName() string { return f.converterName }

// Converter is the converter resolved at build time, or nil.
func (f FieldSpec) Converter() Converter { return f.converter }

// SubSchema is the schema used by association fields; nil for values.
func (f FieldSpec) SubSchema() *Schema { return f.sub }

// Override is the has-one target override, or nil.
func (f FieldSpec) Override() TargetFunc { return f.override }

// HasOverride reports whether a target override is attached.
func (f FieldSpec) HasOverride() bool { return f.override != nil }

// ValueOption configures a value field.
type ValueOption func(*FieldSpec)

// Key reads the field from a differently named input key. It applies to
// value and has-many fields.
func Key(key string) ValueOption {
	return func(f *FieldSpec) {
		f.inputKey = key
	}
}

// IgnoreEmpty drops the field when its input value is empty.
func IgnoreEmpty() ValueOption {
	return func(f *FieldSpec) {
		f.ignoreEmpty = true
	}
}

// ConvertWith applies the converter registered under name on the builder.
func ConvertWith(name string) ValueOption {
	return func(f *FieldSpec) {
		f.converterName = name
	}
}
