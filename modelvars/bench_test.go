package modelvars_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mechvars/mechanics"
	"github.com/katalvlaran/mechvars/modelvars"
)

// benchChain builds n links, each hung from ground by a rigid body and from the
// previous link by a revolute joint, so every frame has two competing paths.
func benchChain(b *testing.B, n int) *mechanics.System {
	b.Helper()
	ground, _ := mechanics.NewReferenceFrame("Ground")
	s, _ := mechanics.NewSystem(ground)
	prev := ground
	for i := 0; i < n; i++ {
		cur, _ := mechanics.NewReferenceFrame(fmt.Sprintf("CS%d", i))
		m, _ := mechanics.NewComponent(fmt.Sprintf("m%d", i), ground, cur, mechanics.RigidBody)
		h, _ := mechanics.NewComponent(fmt.Sprintf("h%d", i), prev, cur, mechanics.RevoluteJoint)
		if _, err := s.AddComponent(m); err != nil {
			b.Fatal(err)
		}
		if _, err := s.AddComponent(h); err != nil {
			b.Fatal(err)
		}
		prev = cur
	}

	return s
}

func BenchmarkFindVariables(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		s := benchChain(b, n)
		b.Run(fmt.Sprintf("links=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := modelvars.FindVariables(s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSpanningTreeStrategy(b *testing.B) {
	s := benchChain(b, 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := modelvars.FindVariables(s, modelvars.WithStrategy(modelvars.StrategySpanningTree)); err != nil {
			b.Fatal(err)
		}
	}
}
