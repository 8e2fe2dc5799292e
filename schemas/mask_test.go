package schemas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-room-backend/schemas"
)

func TestMaskPhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"standard 11 digits", "13812345678", "138****5678"},
		{"too short passes through", "1381234567", "1381234567"},
		{"too long passes through", "138123456789", "138123456789"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, schemas.MaskPhone(tc.in))
		})
	}
}

func TestMaskIDCard(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"18 char id", "110101199001011234", "110101********1234"},
		{"exactly 10 chars keeps every digit visible", "1234567890", "1234567890"},
		{"shorter than 10 passes through", "123456789", "123456789"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schemas.MaskIDCard(tc.in)
			require.Equal(t, tc.want, got)
			require.Len(t, got, len(tc.in))
		})
	}
}
