// SPDX-License-Identifier: MIT

// Package config turns a layered configuration tree into a keyed
// collection of analysis objects.
//
// 🚀 What is config?
//
//	The pipeline that analysis code drives at startup:
//
//	  Override → document.Simplify → DetermineSelection → BuildObjects
//
//	A raw tree (see package document) carries a reserved "override" block
//	whose values replace base values — through shared anchors, so every
//	alias observes the update. The simplified tree then names which members
//	of registered iterables are requested, and one analysis object is built
//	per combination of selected members, addressed by a composite KeyIndex.
//
// ✨ Key features:
//   - Override — recursive override merge; unknown keys are a hard error,
//     shared length-1 sequences are mutated in place so aliases follow
//   - Domain / Enum / Registry — "ordered finite named domain" capability
//     interface plus a registration table (name → domain)
//   - DetermineSelection — bool/list selection descriptors, order preserved
//   - BuildObjects — Cartesian-product construction through a typed
//     factory, with per-combination "{name}" template substitution
//   - Collection — insertion-ordered KeyIndex→object map with lazy,
//     field-filtered iteration (iter.Seq2)
//
// ⚙️ Usage:
//
//	reg := config.NewRegistry()
//	reg.Register("orientation", config.NewEnum(inPlane, midPlane, outOfPlane))
//	reg.Register("qVector", config.NewEnum(all, bottom10, top10))
//
//	if err := config.Override(tree, nil, nil); err != nil { ... }
//	tree = document.Simplify(tree)
//	sel, err := config.DetermineSelection(tree, reg)
//	names, objs, err := config.BuildObjects(factory, args, sel, fmtOpts, "KeyIndex")
//	for key, obj := range objs.Selected(config.Where("qVector", top10)) { ... }
//
// Errors are package-prefixed sentinels (errors.go), matched via errors.Is.
// Override mutates its input tree; callers must not run two merges over the
// same tree concurrently. Everything else is side-effect-free.
package config
