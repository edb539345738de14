package dex

import "testing"

func TestMergeVisibility(t *testing.T) {
	const pkgPrivate AccessFlags = 0

	tests := []struct {
		name string
		a, b AccessFlags
		want AccessFlags
	}{
		{"public beats private", AccPublic, AccPrivate, AccPublic},
		{"public beats protected", AccProtected, AccPublic, AccPublic},
		{"public beats package", pkgPrivate, AccPublic, AccPublic},
		{"package beats protected", pkgPrivate, AccProtected, pkgPrivate},
		{"package beats private", AccPrivate, pkgPrivate, pkgPrivate},
		{"protected beats private", AccProtected, AccPrivate, AccProtected},
		{"private stays private", AccPrivate, AccPrivate, AccPrivate},
		{"public is idempotent", AccPublic, AccPublic, AccPublic},
		{"non-visibility bits ignored", AccPublic | AccFinal | AccInterface, AccPrivate | AccStatic, AccPublic},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MergeVisibility(tc.a, tc.b); got != tc.want {
				t.Errorf("MergeVisibility(%#x, %#x) = %#x, want %#x", tc.a, tc.b, got, tc.want)
			}
			// Least-restrictive-wins is symmetric.
			if got := MergeVisibility(tc.b, tc.a); got != tc.want {
				t.Errorf("MergeVisibility(%#x, %#x) = %#x, want %#x", tc.b, tc.a, got, tc.want)
			}
		})
	}
}
