// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

// Resolve flattens the inheritance chain of the given theme key, applying
// the optional dealer overrides as a final layer. An unregistered leaf key
// falls back to DefaultKey; a dangling or cyclic Extends reference is a
// registration bug and fails the call outright.
//
// Resolve is a pure function of registry state and is safe to call
// concurrently.
func (r *Registry) Resolve(key string, ov *Overrides) (*Resolved, error) {
	leaf := r.themes[key]
	if leaf == nil {
		leaf = r.themes[DefaultKey]
	}
	if leaf == nil {
		return nil, &UnknownThemeError{Key: key, Parent: DefaultKey}
	}

	chain, err := r.ancestry(leaf)
	if err != nil {
		return nil, err
	}

	res := &Resolved{
		Key:        leaf.Key,
		Name:       leaf.Name,
		Version:    leaf.Version,
		Tokens:     make(map[string]string),
		Pages:      make(map[string]Page),
		Components: make(map[string]Factory),
	}

	// Fold base-first so later (more specific) layers win.
	for _, d := range chain {
		foldLayer(res, d.Tokens, d.Pages, d.Components)
	}
	if ov != nil {
		foldLayer(res, ov.Tokens, ov.Pages, ov.Components)
	}
	return res, nil
}

// ancestry walks Extends links from the leaf up and returns the chain in
// base-first order. A repeated key aborts with the full walked chain.
func (r *Registry) ancestry(leaf *Descriptor) ([]*Descriptor, error) {
	var reversed []*Descriptor
	visited := make(map[string]bool)
	walked := []string{}

	for d := leaf; ; {
		if d.Extends == d.Key {
			// Guarded at registration too; descriptors built outside
			// Register still get the distinct error.
			return nil, &SelfReferenceError{Key: d.Key}
		}
		if visited[d.Key] {
			return nil, &CycleError{Chain: append(walked, d.Key)}
		}
		visited[d.Key] = true
		walked = append(walked, d.Key)
		reversed = append(reversed, d)

		if d.Extends == "" {
			break
		}
		parent := r.themes[d.Extends]
		if parent == nil {
			return nil, &UnknownThemeError{Key: d.Key, Parent: d.Extends}
		}
		d = parent
	}

	chain := make([]*Descriptor, len(reversed))
	for i, d := range reversed {
		chain[len(reversed)-1-i] = d
	}
	return chain, nil
}

// foldLayer merges one layer onto the accumulated result, layer winning on
// conflicts: tokens and components overwrite per key, pages merge per route.
func foldLayer(res *Resolved, tokens map[string]string, pages map[string]Page, components map[string]Factory) {
	for k, v := range tokens {
		res.Tokens[k] = v
	}
	for name, f := range components {
		res.Components[name] = f
	}
	for route, child := range pages {
		res.Pages[route] = mergePage(res.Pages[route], child)
	}
}

// mergePage combines a parent and child layout for the same route. SEO
// fields merge shallowly; blocks merge positionally: the child's block at
// index i replaces the parent's, indices the child doesn't supply inherit
// the parent's block, and extra child blocks append.
func mergePage(parent, child Page) Page {
	out := Page{}

	if len(parent.SEO) > 0 || len(child.SEO) > 0 {
		out.SEO = make(map[string]string, len(parent.SEO)+len(child.SEO))
		for k, v := range parent.SEO {
			out.SEO[k] = v
		}
		for k, v := range child.SEO {
			out.SEO[k] = v
		}
	}

	n := len(parent.Blocks)
	if len(child.Blocks) > n {
		n = len(child.Blocks)
	}
	if n > 0 {
		out.Blocks = make([]Block, n)
		copy(out.Blocks, parent.Blocks)
		copy(out.Blocks, child.Blocks)
	}
	return out
}
