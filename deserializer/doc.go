// Package deserializer resolves a schema against input params.
//
// Fields are resolved strictly in declaration order and every partial result
// is folded into the output with params.Merge, so fields writing to the same
// key combine deterministically: later writes win, mappings merge.
//
// Has-one associations may carry a target override registered on the schema
// builder. Depending on its result the sub-object is written under the
// association name, under an alias key (merging with whatever earlier fields
// wrote there), or flattened into the output object itself:
//
//	b := schema.NewBuilder("Tricksy")
//	_ = b.HasOne("thing", basic)
//	_ = b.HasOne("other_thing", other)
//	_ = b.Override("thing", func() schema.Target { return schema.AliasKey("user_info") })
//	_ = b.Override("other_thing", func() schema.Target { return schema.AliasKey("user_info") })
//
// Deserializing {thing: {...}, other_thing: {...}} with that schema yields a
// single user_info mapping holding the fields of both.
package deserializer
