package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVar_NotBlank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "plain", in: "Pi", wantErr: false},
		{name: "padded", in: "  Pi ", wantErr: false},
		{name: "empty", in: "", wantErr: true},
		{name: "spaces", in: "   ", wantErr: true},
		{name: "tabs and newlines", in: "\t\n", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Var(tt.in, "notblank")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVar_UTF8(t *testing.T) {
	t.Parallel()

	require.NoError(t, Var("Pi (π) ≈ 3.14", "utf8"))
	require.NoError(t, Var("", "utf8"))
	require.Error(t, Var("bad\xffname", "utf8"))
	require.Error(t, Var("1\xfe", "notblank,utf8"))
}

func TestStruct_OneOf(t *testing.T) {
	t.Parallel()

	type opts struct {
		Output string `validate:"oneof=table json"`
	}
	require.NoError(t, Struct(opts{Output: "json"}))
	require.Error(t, Struct(opts{Output: "xml"}))
}
