package predicate_test

import (
	"testing"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	vip := predicate.StaticSubject{Level: 0, Permissions: []string{"chatstyle.vip"}}
	admin := predicate.StaticSubject{Level: 4, Permissions: []string{"chatstyle.*"}}
	nobody := predicate.StaticSubject{}

	tests := []struct {
		name string
		p    predicate.Predicate
		s    predicate.Subject
		want bool
	}{
		{"default passes everyone", predicate.Default(), nobody, true},
		{"operator level too low", predicate.Operator{Level: 2}, vip, false},
		{"operator level enough", predicate.Operator{Level: 2}, admin, true},
		{"permission held", predicate.Permission{Node: "chatstyle.vip"}, vip, true},
		{"permission wildcard", predicate.Permission{Node: "chatstyle.mod"}, admin, true},
		{"permission missing", predicate.Permission{Node: "chatstyle.mod"}, vip, false},
		{"nil subject", predicate.Permission{Node: "x"}, nil, false},
		{"any", predicate.Any{predicate.Operator{Level: 4}, predicate.Permission{Node: "chatstyle.vip"}}, vip, true},
		{"all", predicate.All{predicate.Operator{Level: 4}, predicate.Permission{Node: "chatstyle.vip"}}, vip, false},
		{"empty any", predicate.Any{}, vip, false},
		{"empty all", predicate.All{}, vip, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Test(tt.s))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]interface{}
		want     string
		wantCode errors.ErrorCode
	}{
		{name: "empty is default", raw: nil, want: "operator(0)"},
		{name: "operator", raw: map[string]interface{}{"type": "operator", "level": "3"}, want: "operator(3)"},
		{name: "permission", raw: map[string]interface{}{"type": "permission", "node": "chatstyle.vip"}, want: "permission(chatstyle.vip)"},
		{
			name: "nested any",
			raw: map[string]interface{}{
				"type": "any",
				"of": []map[string]interface{}{
					{"type": "op", "level": 2},
					{"type": "perm", "node": "a.b"},
				},
			},
			want: "any(operator(2), permission(a.b))",
		},
		{name: "permission without node", raw: map[string]interface{}{"type": "permission"}, wantCode: errors.ErrConfigValid},
		{name: "unknown type", raw: map[string]interface{}{"type": "moon_phase"}, wantCode: errors.ErrUnknownPredicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := predicate.Decode(tt.raw)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
