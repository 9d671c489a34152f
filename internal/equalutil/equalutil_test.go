package equalutil_test

import (
	"math"
	"testing"

	"github.com/lang-tools/gqlvisit/internal/equalutil"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestEqualPtr_float64(t *testing.T) {
	tests := []struct {
		name string
		a    *float64
		b    *float64
		want bool
	}{
		{
			name: "both nil",
			a:    nil,
			b:    nil,
			want: true,
		},
		{
			name: "a nil, b non-nil",
			a:    nil,
			b:    ptr(3.14),
			want: false,
		},
		{
			name: "a non-nil, b nil",
			a:    ptr(3.14),
			b:    nil,
			want: false,
		},
		{
			name: "both same value",
			a:    ptr(3.14),
			b:    ptr(3.14),
			want: true,
		},
		{
			name: "both different values",
			a:    ptr(3.14),
			b:    ptr(2.71),
			want: false,
		},
		{
			name: "both zero",
			a:    ptr(0.0),
			b:    ptr(0.0),
			want: true,
		},
		{
			name: "negative values equal",
			a:    ptr(-1.5),
			b:    ptr(-1.5),
			want: true,
		},
		{
			name: "both NaN",
			a:    ptr(math.NaN()),
			b:    ptr(math.NaN()),
			want: false, // NaN != NaN per IEEE 754
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := equalutil.EqualPtr(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEqualPtr_int(t *testing.T) {
	tests := []struct {
		name string
		a    *int
		b    *int
		want bool
	}{
		{
			name: "both nil",
			a:    nil,
			b:    nil,
			want: true,
		},
		{
			name: "a nil, b non-nil",
			a:    nil,
			b:    ptr(42),
			want: false,
		},
		{
			name: "a non-nil, b nil",
			a:    ptr(42),
			b:    nil,
			want: false,
		},
		{
			name: "both same value",
			a:    ptr(42),
			b:    ptr(42),
			want: true,
		},
		{
			name: "both different values",
			a:    ptr(42),
			b:    ptr(100),
			want: false,
		},
		{
			name: "both zero",
			a:    ptr(0),
			b:    ptr(0),
			want: true,
		},
		{
			name: "negative values equal",
			a:    ptr(-5),
			b:    ptr(-5),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := equalutil.EqualPtr(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEqualPtr_bool(t *testing.T) {
	tests := []struct {
		name string
		a    *bool
		b    *bool
		want bool
	}{
		{
			name: "both nil",
			a:    nil,
			b:    nil,
			want: true,
		},
		{
			name: "a nil, b non-nil true",
			a:    nil,
			b:    ptr(true),
			want: false,
		},
		{
			name: "a nil, b non-nil false",
			a:    nil,
			b:    ptr(false),
			want: false,
		},
		{
			name: "a non-nil, b nil",
			a:    ptr(true),
			b:    nil,
			want: false,
		},
		{
			name: "both true",
			a:    ptr(true),
			b:    ptr(true),
			want: true,
		},
		{
			name: "both false",
			a:    ptr(false),
			b:    ptr(false),
			want: true,
		},
		{
			name: "true vs false",
			a:    ptr(true),
			b:    ptr(false),
			want: false,
		},
		{
			name: "false vs true",
			a:    ptr(false),
			b:    ptr(true),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := equalutil.EqualPtr(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
		})
	}
}
