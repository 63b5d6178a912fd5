// Package dotpath reads and writes values in nested map[string]any
// structures using dot-separated key paths.
//
// A path like "user.address.city" walks one map level per segment:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	dotpath.Get(m, "user.address.city") // → "London", true
//	dotpath.Has(m, "user.name")         // → true
//	dotpath.Set(m, "user.age", 30)
//	dotpath.Forget(m, "user.address")
//
// Absence is never an error: [Get] reports a missing key or a missing
// intermediate level with a false second return value. The collections
// package builds its Pluck, FindBy and path-based sorting on this
// contract.
package dotpath
