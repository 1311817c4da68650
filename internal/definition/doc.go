// Package definition loads deserializer definitions from YAML and compiles
// them into schemas.
//
// A definition file declares named deserializers and the converters their
// attributes may use:
//
//	version: "1"
//	definitions:
//	  - name: Basic
//	    fields:
//	      - user_id
//	      - attribute: text
//	        key: body
//	        ignore_empty: true
//	        convert_with: trim
//	  - name: Message
//	    fields:
//	      - has_one: user
//	        deserializer: Basic
//	        target: "@object"
//	converters:
//	  - name: trim
//	    expr: value.trim()
//
// A plain string field is shorthand for an attribute. A has_one target is
// either an output key or "@object", which merges the association into the
// parent object. Converters are CEL expressions over the raw input value,
// bound as "value"; Go converters can be added to a ConverterRegistry
// before compiling.
//
// Validate reports problems as diagnostics; Compile validates, orders the
// definitions so every referenced deserializer is built first, and returns
// the schemas by name.
package definition
