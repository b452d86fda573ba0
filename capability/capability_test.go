package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type attrs map[string]int

func (a attrs) GetAttr(name string) (int, error) { return a[name], nil }
func (a attrs) Dir() []string                    { return nil }

func (a attrs) SetAttr(name string, v int) error {
	a[name] = v
	return nil
}

func (a attrs) DelAttr(name string) error {
	delete(a, name)
	return nil
}

type exiter struct{}

func (exiter) Exit() error { return nil }

// Compile-time interface checks.
var (
	_ SupportsGetAttr[int] = attrs(nil)
	_ SupportsSetAttr[int] = attrs(nil)
	_ SupportsDelAttr      = attrs(nil)
	_ SupportsDir          = attrs(nil)
	_ Exitable             = exiter{}
)

func TestImplements(t *testing.T) {
	tests := []struct {
		name  string
		check func(any) bool
		value any
		want  bool
	}{
		{"set attr satisfied", Implements[SupportsSetAttr[int]], attrs{}, true},
		{"set attr wrong value type", Implements[SupportsSetAttr[string]], attrs{}, false},
		{"del attr satisfied", Implements[SupportsDelAttr], attrs{}, true},
		{"del item missing", Implements[SupportsDelItem[string]], attrs{}, false},
		{"exitable satisfied", Implements[Exitable], exiter{}, true},
		{"plain value", Implements[SupportsDir], 42, false},
		{"nil value", Implements[SupportsDir], nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.value))
		})
	}
}
