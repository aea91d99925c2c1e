package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emforge/internal/app"

	_ "go.trai.ch/emforge/internal/wiring"
)

// TestGraftGraphResolves executes the full dependency graph and asserts
// every node constructs. A typo in any node's DependsOn list or Dep[T]
// lookup fails here instead of at startup.
//
// graft.AssertDepsValid is not usable here: it infers dependency IDs from
// the package name of the resolved type, and every adapter resolves
// interfaces from the shared ports package.
func TestGraftGraphResolves(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Defaults)
}
