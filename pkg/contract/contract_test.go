package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	cases := map[string]struct {
		cond        bool
		op          string
		format      string
		args        []any
		expectedMsg string
	}{
		"Holds": {
			cond: true,
			op:   "partition.Grow",
		},
		"Violated": {
			cond:        false,
			op:          "partition.Grow",
			format:      "part %d is empty",
			args:        []any{3},
			expectedMsg: "contract violation in partition.Grow: part 3 is empty",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.cond {
				assert.NotPanics(t, func() {
					Assert(tc.cond, tc.op, tc.format, tc.args...)
				})
				return
			}
			defer func() {
				v, ok := recover().(*Violation)
				if !ok {
					t.Fatalf("expected *Violation, got %T", v)
				}
				assert.Equal(t, tc.op, v.Op)
				assert.Equal(t, tc.expectedMsg, v.Error())
			}()
			Assert(tc.cond, tc.op, tc.format, tc.args...)
			t.Fatal("expected panic")
		})
	}
}
