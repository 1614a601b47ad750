// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

// A Provider themes one chart instance. It owns a Scope for its whole
// lifetime and resolves its theme from the current source and
// overrides on every call.
//
// A Provider must not be used concurrently with SetSource or
// SetOverrides. Distinct Providers are independent.
type Provider struct {
	scope     Scope
	src       Source
	overrides Theme
}

// NewProvider returns a Provider with a fresh scope. A nil src
// selects the light preset.
func NewProvider(src Source, overrides Theme) *Provider {
	return &Provider{scope: NewScope(), src: src, overrides: overrides.Clone()}
}

// Scope returns the provider's scope.
func (p *Provider) Scope() Scope { return p.scope }

// SetSource replaces the base theme source.
func (p *Provider) SetSource(src Source) { p.src = src }

// SetOverrides replaces the overrides.
func (p *Provider) SetOverrides(overrides Theme) { p.overrides = overrides.Clone() }

// Theme returns the resolved theme.
func (p *Provider) Theme() Theme {
	return Resolve(p.src, p.overrides)
}

// Stylesheet returns the style text for the resolved theme in the
// provider's scope.
func (p *Provider) Stylesheet() string {
	return Stylesheet(p.scope, p.Theme())
}
