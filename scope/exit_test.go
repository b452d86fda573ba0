package scope

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitScope_ExitSuppressed(t *testing.T) {
	var after bool
	err := Exitable(func(s *ExitScope) error {
		if err := s.Exit(); err != nil {
			return err
		}
		after = true
		return nil
	})

	require.NoError(t, err)
	require.False(t, after, "block continued past Exit")
}

func TestExitScope_NormalCompletion(t *testing.T) {
	var ran bool
	err := Exitable(func(*ExitScope) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	require.True(t, ran)
}

func TestExitScope_UnrelatedErrorPropagates(t *testing.T) {
	boom := stderrors.New("boom")
	err := Exitable(func(*ExitScope) error { return boom })

	require.Same(t, boom, err)
}

func TestExitScope_WrappedSignal(t *testing.T) {
	err := Exitable(func(s *ExitScope) error {
		return fmt.Errorf("leaving early: %w", s.Exit())
	})
	require.NoError(t, err)

	err = Exitable(func(s *ExitScope) error {
		return fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", s.Exit()))
	})
	require.NoError(t, err)
}

func TestExitScope_JoinedSignalKeepsOtherErrors(t *testing.T) {
	other := stderrors.New("other")
	var scope *ExitScope
	err := Exitable(func(s *ExitScope) error {
		scope = s
		return stderrors.Join(other, s.Exit())
	})

	require.Error(t, err)
	require.ErrorIs(t, err, other)
	require.ErrorIs(t, err, scope.Exit())
}

func TestExitScope_NestedOuterExit(t *testing.T) {
	var trail []string

	outer := NewExitScope()
	err := outer.Run(func(outer *ExitScope) error {
		trail = append(trail, "outer")
		err := Exitable(func(*ExitScope) error {
			trail = append(trail, "inner")
			return outer.Exit()
		})
		if err != nil {
			return err
		}
		trail = append(trail, "after inner")
		return nil
	})
	trail = append(trail, "after outer")

	require.NoError(t, err)
	require.Equal(t, []string{"outer", "inner", "after outer"}, trail)
}

func TestExitScope_NestedInnerExit(t *testing.T) {
	var trail []string

	err := Exitable(func(*ExitScope) error {
		err := Exitable(func(inner *ExitScope) error {
			trail = append(trail, "inner")
			return inner.Exit()
		})
		if err != nil {
			return err
		}
		trail = append(trail, "after inner")
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, []string{"inner", "after inner"}, trail)
}

func TestExitScope_DeeplyNested(t *testing.T) {
	var reached []int

	top := NewExitScope()
	var nest func(depth int) error
	nest = func(depth int) error {
		return Exitable(func(*ExitScope) error {
			reached = append(reached, depth)
			if depth == 5 {
				return top.Exit()
			}
			if err := nest(depth + 1); err != nil {
				return err
			}
			reached = append(reached, -depth)
			return nil
		})
	}

	err := top.Run(func(*ExitScope) error { return nest(1) })

	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, reached)
}

func TestExitScope_SignalsAreDistinct(t *testing.T) {
	a, b := NewExitScope(), NewExitScope()

	require.NotSame(t, a.Exit(), b.Exit())
	require.False(t, stderrors.Is(a.Exit(), b.Exit()))

	// A foreign signal escapes unchanged.
	err := a.Run(func(*ExitScope) error { return b.Exit() })
	require.Same(t, b.Exit(), err)
	require.Contains(t, err.Error(), "outside of its scope")
}

func TestExitScope_Reusable(t *testing.T) {
	s := NewExitScope()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Run(func(s *ExitScope) error { return s.Exit() }))
	}
}
