package deserializer

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"param-deserializer/params"
	"param-deserializer/schema"
)

// Range is what the to_range converter produces.
type Range struct{ Lo, Hi int }

var errNotARange = errors.New("not a range")

func toRange(raw any) (any, error) {
	switch v := raw.(type) {
	case []any:
		if len(v) == 0 {
			return nil, errNotARange
		}

		lo, okLo := v[0].(int)
		hi, okHi := v[len(v)-1].(int)
		if !okLo || !okHi {
			return nil, errNotARange
		}

		return Range{Lo: lo, Hi: hi}, nil
	case int:
		return Range{Lo: v, Hi: v}, nil
	default:
		return nil, errNotARange
	}
}

func build(b *schema.Builder) *schema.Schema {
	return schema.Must(b.Build())
}

var (
	basicSchema = func() *schema.Schema {
		b := schema.NewBuilder("Basic")
		_ = b.Attributes("user_id", "text")
		return build(b)
	}()

	attributeSchema = func() *schema.Schema {
		b := schema.NewBuilder("Attribute")
		_ = b.Attribute("user_id", schema.Key("user"))
		_ = b.Attribute("text")
		return build(b)
	}()

	vanillaHasOneSchema = func() *schema.Schema {
		b := schema.NewBuilder("VanillaHasOne")
		_ = b.Attribute("internal", schema.Key("external"))
		_ = b.HasOne("params", basicSchema)
		return build(b)
	}()

	emptiableSchema = func() *schema.Schema {
		b := schema.NewBuilder("EmptiableAttribute")
		_ = b.Attribute("emptiable", schema.IgnoreEmpty())
		_ = b.Attribute("nonemptiable")
		_ = b.Attribute("emptiable_with_key", schema.IgnoreEmpty(), schema.Key("empty"))
		_ = b.Attribute("nonemptiable_with_key", schema.Key("non_empty"))
		return build(b)
	}()

	hasOneWithTargetSchema = func() *schema.Schema {
		b := schema.NewBuilder("HasOneWithTarget")
		_ = b.Attribute("internal", schema.Key("external"))
		_ = b.HasOne("thing", basicSchema)
		_ = b.Override("thing", func() schema.Target { return schema.AliasKey("user_info") })
		return build(b)
	}()

	otherThingSchema = func() *schema.Schema {
		b := schema.NewBuilder("OtherThing")
		_ = b.Attributes("attr1", "attr2")
		return build(b)
	}()

	tricksySchema = func() *schema.Schema {
		b := schema.NewBuilder("Tricksy")
		_ = b.Attribute("internal", schema.Key("external"))
		_ = b.HasOne("thing", basicSchema)
		_ = b.HasOne("other_thing", otherThingSchema)
		_ = b.Override("thing", func() schema.Target { return schema.AliasKey("user_info") })
		_ = b.Override("other_thing", func() schema.Target { return schema.AliasKey("user_info") })
		return build(b)
	}()

	extraTricksySchema = func() *schema.Schema {
		b := schema.NewBuilder("ExtraTricksy")
		_ = b.Attribute("internal", schema.Key("external"))
		_ = b.HasOne("thing", basicSchema)
		_ = b.HasOne("other_thing", otherThingSchema)
		_ = b.Override("other_thing", func() schema.Target { return schema.AliasKey("thing") })
		return build(b)
	}()

	objectTargetSchema = func() *schema.Schema {
		b := schema.NewBuilder("HasOneWithObjectTarget")
		_ = b.Attribute("internal", schema.Key("external"))
		_ = b.HasOne("thing", basicSchema)
		_ = b.HasOne("other_thing", otherThingSchema)
		_ = b.Override("thing", schema.Identity)
		_ = b.Override("other_thing", schema.Identity)
		return build(b)
	}()

	conversionSchema = func() *schema.Schema {
		b := schema.NewBuilder("Conversion")
		_ = b.Attribute("real_range", schema.ConvertWith("to_range"))
		_ = b.Attribute("bad_range", schema.ConvertWith("to_range"))
		_ = b.Converter("to_range", toRange)
		return build(b)
	}()

	keyedConversionSchema = func() *schema.Schema {
		b := schema.NewBuilder("KeyedConversion")
		_ = b.Attribute("real_range", schema.ConvertWith("to_range"), schema.Key("real"))
		_ = b.Attribute("bad_range", schema.ConvertWith("to_range"), schema.Key("bad"))
		_ = b.Converter("to_range", toRange)
		return build(b)
	}()

	nillableConversionSchema = func() *schema.Schema {
		b := schema.NewBuilder("NillableConversion")
		_ = b.Attribute("real_range", schema.ConvertWith("to_range"), schema.Key("real"))
		_ = b.Attribute("bad_range", schema.ConvertWith("to_range"), schema.Key("bad"), schema.IgnoreEmpty())
		_ = b.Converter("to_range", toRange)
		return build(b)
	}()

	nestedSchema = func() *schema.Schema {
		b := schema.NewBuilder("Nested")
		_ = b.Attribute("name", schema.Key("attr_1"))
		_ = b.Attribute("attr_2")
		return build(b)
	}()

	nestableSchema = func() *schema.Schema {
		b := schema.NewBuilder("Nestable")
		_ = b.Attributes("id", "attr_1")
		_ = b.Nests("nested_object", nestedSchema)
		return build(b)
	}()

	hasManySchema = func() *schema.Schema {
		b := schema.NewBuilder("HasMany")
		_ = b.Attribute("id")
		_ = b.HasMany("attributes", attributeSchema)
		return build(b)
	}()
)

// defaultParams mirrors a typical request: known keys plus a stray one.
func defaultParams() *params.Map {
	return params.FromPairs(
		"user", 6,
		"user_id", 6,
		"text", "text",
		"i_shouldnt_be_here", "should_i_now",
	)
}

func assertObject(t *testing.T, expected map[string]any, got *params.Map) {
	t.Helper()

	if !assert.NotNil(t, got) {
		return
	}

	assert.Equal(t, expected, got.Plain(), spew.Sdump(got))
}
