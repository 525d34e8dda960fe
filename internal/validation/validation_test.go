package validation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type title string

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		value any
		rules []Rule
		want  bool
	}{
		{"empty string required", "", []Rule{Required()}, false},
		{"blank string required", "   ", []Rule{Required()}, false},
		{"non-empty string required", "Build API", []Rule{Required()}, true},
		{"number in range", 5, []Rule{Min(1), Max(10)}, true},
		{"number above max", 11, []Rule{Max(10)}, false},
		{"number below min", 0, []Rule{Min(1)}, false},
		{"number at bounds", 10, []Rule{Min(10), Max(10)}, true},
		{"zero required", 0, []Rule{Required()}, false},
		{"non-zero required", 3, []Rule{Required()}, true},
		{"string min length", "desc", []Rule{MinLength(5)}, false},
		{"string min length met", "descr", []Rule{MinLength(5)}, true},
		{"string max length", "toolong", []Rule{MaxLength(3)}, false},
		{"length counts runes", "héllo", []Rule{MaxLength(5)}, true},
		{"no rules", "", nil, true},
		{"length rules ignore numbers", 123456, []Rule{MaxLength(2)}, true},
		{"range rules ignore strings", "99", []Rule{Max(10)}, true},
		{"unsigned ints", uint8(7), []Rule{Min(1), Max(5)}, false},
		{"nil required", nil, []Rule{Required()}, false},
		{"nil not required", nil, []Rule{Min(1)}, true},
		{"nil rule skipped", "x", []Rule{nil, Required()}, true},
		{"typed nil pointer required", (*string)(nil), []Rule{Required()}, false},
		{"float above max", 11.0, []Rule{Max(10)}, false},
		{"float zero required", 0.0, []Rule{Required()}, false},
		{"float below min", 0.5, []Rule{Min(1)}, false},
		{"float in range", float32(2.5), []Rule{Required(), Min(1), Max(5)}, true},
		{"huge unsigned above max", uint64(math.MaxUint64), []Rule{Max(10)}, false},
		{"huge unsigned above min", uint64(math.MaxUint64), []Rule{Required(), Min(1)}, true},
		{"unsigned with negative min", uint(0), []Rule{Min(-5)}, true},
		{"named string type", title("  "), []Rule{Required()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.value, tt.rules...))
		})
	}
}

func TestValidate_ReportsConstraint(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		rules     []Rule
		wantErr   error
		wantLimit int
	}{
		{"required", "", []Rule{Required()}, ErrRequired, 0},
		{"too short", "abc", []Rule{Required(), MinLength(5)}, ErrTooShort, 5},
		{"too long", "abcdef", []Rule{MaxLength(4)}, ErrTooLong, 4},
		{"too small", 0, []Rule{Min(1)}, ErrTooSmall, 1},
		{"too large", 6, []Rule{Min(1), Max(5)}, ErrTooLarge, 5},
		{"float too large", 7.5, []Rule{Max(5)}, ErrTooLarge, 5},
		{"huge unsigned too large", uint64(math.MaxUint64), []Rule{Max(10)}, ErrTooLarge, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.value, tt.rules...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantLimit, verr.Limit)
		})
	}
}

func TestValidate_RequiredCheckedFirst(t *testing.T) {
	err := Validate("", Required(), MinLength(5))
	assert.ErrorIs(t, err, ErrRequired)
}

func TestError_Messages(t *testing.T) {
	assert.Equal(t, "value is required", (&Error{Constraint: ErrRequired}).Error())
	assert.Equal(t, "must be at least 5 characters", (&Error{Constraint: ErrTooShort, Limit: 5}).Error())
	assert.Equal(t, "must be at most 3 characters", (&Error{Constraint: ErrTooLong, Limit: 3}).Error())
	assert.Equal(t, "must be at least 1", (&Error{Constraint: ErrTooSmall, Limit: 1}).Error())
	assert.Equal(t, "must be at most 10", (&Error{Constraint: ErrTooLarge, Limit: 10}).Error())
}

func TestCheckMatchesValidate(t *testing.T) {
	values := []any{"", "a", "hello world", 0, 1, 5, 11, -3}
	rules := []Rule{Required(), MinLength(2), MaxLength(8), Min(1), Max(10)}

	for _, v := range values {
		assert.Equal(t, Validate(v, rules...) == nil, Check(v, rules...), "value %v", v)
	}
}

func TestRules_Options(t *testing.T) {
	r := Rules{Required: true, Min: Int(1), Max: Int(5)}
	opts := r.Options()
	assert.Len(t, opts, 3)

	assert.True(t, Check(3, opts...))
	assert.False(t, Check(6, opts...))
	assert.False(t, Check(0, opts...))

	assert.Empty(t, Rules{}.Options())
}

func TestRules_Describe(t *testing.T) {
	tests := []struct {
		rules Rules
		want  string
	}{
		{Rules{Required: true}, "required"},
		{Rules{Required: true, MinLength: Int(5)}, "required, at least 5 characters"},
		{Rules{MinLength: Int(2), MaxLength: Int(20)}, "2-20 characters"},
		{Rules{MaxLength: Int(20)}, "at most 20 characters"},
		{Rules{Required: true, Min: Int(1), Max: Int(5)}, "required, 1 to 5"},
		{Rules{Min: Int(1)}, "at least 1"},
		{Rules{Max: Int(9)}, "at most 9"},
		{Rules{}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.rules.Describe())
	}
}
