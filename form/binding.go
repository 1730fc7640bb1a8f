// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import "github.com/danielhkuo/monthlog/schema"

// Binding is a read/write accessor scoped to one subtree of a session's form.
// Inputs receive a Binding and never see the rest of the form.
type Binding[T any] struct {
	s    *Session
	lens schema.Lens[T]
}

// Bind scopes s to the subtree addressed by lens
func Bind[T any](s *Session, lens schema.Lens[T]) *Binding[T] {
	return &Binding[T]{s: s, lens: lens}
}

func (b *Binding[T]) Name() string {
	return b.lens.Name
}

func (b *Binding[T]) Get() T {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	return b.lens.Get(&b.s.values)
}

func (b *Binding[T]) Set(v T) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if err := b.s.editable(); err != nil {
		return err
	}
	b.lens.Set(&b.s.values, v)
	return nil
}

// Update applies fn to the current value under the session lock
func (b *Binding[T]) Update(fn func(v *T)) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if err := b.s.editable(); err != nil {
		return err
	}
	v := b.lens.Get(&b.s.values)
	fn(&v)
	b.lens.Set(&b.s.values, v)
	return nil
}
