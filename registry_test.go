package regform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotenko/regform"
)

func TestRegistry(t *testing.T) {
	t.Run("preserves registration order", func(t *testing.T) {
		r := regform.NewRegistry()
		r.Register(regform.Descriptor{FieldID: "b"})
		r.Register(regform.Descriptor{FieldID: "a"})
		r.Register(regform.Descriptor{FieldID: "c"})

		assert.Equal(t, []string{"b", "a", "c"}, r.FieldIDs())
		assert.Equal(t, 3, r.Len())
	})

	t.Run("overwrite keeps the original position", func(t *testing.T) {
		r := regform.NewRegistry()
		r.Register(regform.Descriptor{FieldID: "a"})
		r.Register(regform.Descriptor{FieldID: "b"})
		r.Register(regform.Descriptor{FieldID: "a", Required: true})

		assert.Equal(t, []string{"a", "b"}, r.FieldIDs())

		d, ok := r.Get("a")
		require.True(t, ok)
		assert.True(t, d.Required)
	})

	t.Run("Get reports missing fields", func(t *testing.T) {
		r := regform.NewRegistry()
		_, ok := r.Get("nope")
		assert.False(t, ok)
	})

	t.Run("FieldIDs returns a copy", func(t *testing.T) {
		r := regform.NewRegistry()
		r.Register(regform.Descriptor{FieldID: "a"})

		ids := r.FieldIDs()
		ids[0] = "mutated"
		assert.Equal(t, []string{"a"}, r.FieldIDs())
	})
}

func TestState(t *testing.T) {
	t.Run("set, clear and query", func(t *testing.T) {
		s := regform.NewState()
		assert.True(t, s.IsValid())

		s.SetError("email", "must be a valid email address")
		assert.False(t, s.IsValid())

		msg, ok := s.Message("email")
		require.True(t, ok)
		assert.Equal(t, "must be a valid email address", msg)

		s.ClearError("email")
		assert.True(t, s.IsValid())
		_, ok = s.Message("email")
		assert.False(t, ok)
	})

	t.Run("ClearAll empties the mapping", func(t *testing.T) {
		s := regform.NewState()
		s.SetError("a", "x")
		s.SetError("b", "y")
		s.ClearAll()
		assert.True(t, s.IsValid())
		assert.Empty(t, s.Errors())
	})

	t.Run("Errors returns a snapshot", func(t *testing.T) {
		s := regform.NewState()
		s.SetError("a", "x")

		snapshot := s.Errors()
		snapshot["a"] = "mutated"
		snapshot["b"] = "added"

		msg, _ := s.Message("a")
		assert.Equal(t, "x", msg)
		_, ok := s.Message("b")
		assert.False(t, ok)
	})
}
