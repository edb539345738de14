package descriptor

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"void", KindVoid},
		{"boolean", KindBoolean},
		{"byte", KindByte},
		{"short", KindShort},
		{"char", KindChar},
		{"int", KindInt},
		{"long", KindLong},
		{"float", KindFloat},
		{"double", KindDouble},
		{"object", KindObject},
		{"array", KindArray},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"V", KindVoid},
		{"Z", KindBoolean},
		{"B", KindByte},
		{"S", KindShort},
		{"C", KindChar},
		{"I", KindInt},
		{"J", KindLong},
		{"F", KindFloat},
		{"D", KindDouble},
		{"Ljava/lang/String;", KindObject},
		{"[I", KindArray},
		{"[[Ljava/lang/Object;", KindArray},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.name); got != tc.want {
				t.Errorf("Classify(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestClassifyInvalidPanics(t *testing.T) {
	for _, name := range []string{"", "Qfoo;", "x"} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Classify(%q) did not panic", name)
				}
			}()
			Classify(name)
		})
	}
}

func TestKindIsPrimitive(t *testing.T) {
	primitives := []Kind{
		KindBoolean, KindByte, KindShort, KindChar,
		KindInt, KindLong, KindFloat, KindDouble,
	}
	for _, k := range primitives {
		if !k.IsPrimitive() {
			t.Errorf("%s should be primitive", k)
		}
	}

	nonPrimitives := []Kind{KindVoid, KindObject, KindArray}
	for _, k := range nonPrimitives {
		if k.IsPrimitive() {
			t.Errorf("%s should not be primitive", k)
		}
	}
}

func TestKindShorty(t *testing.T) {
	tests := []struct {
		kind Kind
		want byte
	}{
		{KindVoid, 'V'},
		{KindBoolean, 'Z'},
		{KindByte, 'B'},
		{KindShort, 'S'},
		{KindChar, 'C'},
		{KindInt, 'I'},
		{KindLong, 'J'},
		{KindFloat, 'F'},
		{KindDouble, 'D'},
		{KindObject, 'L'},
		{KindArray, 'L'},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.Shorty(); got != tc.want {
				t.Errorf("Shorty() = %c, want %c", got, tc.want)
			}
		})
	}
}
