package grid_test

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/automaton/internal/grid"
)

var _ = Describe("Grid", func() {
	Describe("New", func() {
		It("allocates two zeroed buffers of the requested shape", func() {
			g, err := grid.New(4, 3, 2)
			Expect(err).NotTo(HaveOccurred())

			cur, next := g.CurrentBuffer(), g.NextBuffer()
			Expect(cur.Width()).To(Equal(4))
			Expect(cur.Height()).To(Equal(3))
			Expect(cur.Cells()).To(HaveLen(12))
			Expect(next.Cells()).To(HaveLen(12))
			Expect(cur.Histogram(2)).To(Equal([]int{12, 0}))
		})

		DescribeTable("rejects invalid configuration",
			func(w, h, states int, want error) {
				_, err := grid.New(w, h, states)
				Expect(err).To(MatchError(want))
			},
			Entry("zero width", 0, 3, 2, grid.ErrDimensions),
			Entry("negative height", 3, -1, 2, grid.ErrDimensions),
			Entry("single state", 3, 3, 1, grid.ErrStates),
			Entry("overflowing cell count", math.MaxInt/2, 3, 2, grid.ErrAllocation),
		)
	})

	Describe("Advance", func() {
		It("swaps current and next", func() {
			g, _ := grid.New(2, 2, 2)
			g.NextBuffer().Set(1, 1, 1)

			g.Advance()
			Expect(g.CurrentBuffer().At(1, 1)).To(Equal(grid.Cell(1)))
			Expect(g.NextBuffer().At(1, 1)).To(Equal(grid.Cell(0)))

			g.Advance()
			Expect(g.CurrentBuffer().At(1, 1)).To(Equal(grid.Cell(0)))
		})
	})

	Describe("Step", func() {
		It("leaves the previous generation untouched until it is the write target again", func() {
			g, _ := grid.New(3, 3, 4)
			g.Set(0, 0, 2)
			before := g.Copy()

			g.Step(func(cur, next grid.Buffer) {
				for i, c := range cur.Cells() {
					next.Cells()[i] = (c + 1) % 4
				}
			})

			Expect(g.NextBuffer().Equal(before)).To(BeTrue())
			Expect(g.CurrentBuffer().At(0, 0)).To(Equal(grid.Cell(3)))
			Expect(g.CurrentBuffer().At(1, 1)).To(Equal(grid.Cell(1)))
		})

		It("serializes concurrent steps", func() {
			g, _ := grid.New(8, 8, 2)
			var wg sync.WaitGroup
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					g.Step(func(cur, next grid.Buffer) {
						for j, c := range cur.Cells() {
							next.Cells()[j] = 1 - c
						}
					})
				}()
			}
			wg.Wait()
			Expect(g.CurrentBuffer().Histogram(2)).To(Equal([]int{64, 0}))
		})
	})

	Describe("Load and Randomize", func() {
		It("copies a matching buffer into the current generation", func() {
			g, _ := grid.New(2, 2, 3)
			src := grid.NewBuffer(2, 2)
			src.Set(1, 0, 2)
			Expect(g.Load(src)).To(Succeed())
			Expect(g.CurrentBuffer().At(1, 0)).To(Equal(grid.Cell(2)))

			Expect(g.Load(grid.NewBuffer(3, 2))).To(MatchError(grid.ErrDimensions))
		})

		It("draws every state in range and is deterministic per seed", func() {
			a, _ := grid.New(16, 16, 5)
			b, _ := grid.New(16, 16, 5)
			a.Randomize(7)
			b.Randomize(7)
			Expect(a.CurrentBuffer().Equal(b.CurrentBuffer())).To(BeTrue())
			for _, c := range a.CurrentBuffer().Cells() {
				Expect(int(c)).To(BeNumerically(">=", 0))
				Expect(int(c)).To(BeNumerically("<", 5))
			}
		})
	})

	It("excludes readers while Set, Load and Randomize write", func() {
		g, _ := grid.New(32, 32, 4)
		src := grid.NewBuffer(32, 32)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer GinkgoRecover()
			defer wg.Done()
			for i := 0; i < 50; i++ {
				g.Set(i%32, i%32, grid.Cell(i%4))
				Expect(g.Load(src)).To(Succeed())
				g.Randomize(int64(i))
			}
		}()
		go func() {
			defer GinkgoRecover()
			defer wg.Done()
			for i := 0; i < 50; i++ {
				g.Read(func(b grid.Buffer) {
					first := b.Clone()
					Expect(b.Equal(first)).To(BeTrue())
				})
			}
		}()
		wg.Wait()

		g.Set(3, 4, 2)
		Expect(g.CurrentBuffer().At(3, 4)).To(Equal(grid.Cell(2)))
	})

	It("releases buffers on Destroy", func() {
		g, _ := grid.New(2, 2, 2)
		g.Destroy()
		Expect(g.CurrentBuffer().Cells()).To(BeEmpty())
	})
})

var _ = Describe("Neighborhood", func() {
	var b grid.Buffer

	BeforeEach(func() {
		b = grid.NewBuffer(3, 3)
		for i := range b.Cells() {
			b.Cells()[i] = 1
		}
	})

	It("excludes out-of-bounds positions at a corner", func() {
		Expect(grid.NeighborCount(0, 0, b)).To(Equal(3))
		Expect(grid.CountWeightedNeighbors(0, 0, b)).To(Equal(3))
	})

	It("counts all eight neighbors in the interior", func() {
		Expect(grid.CountWeightedNeighbors(1, 1, b)).To(Equal(8))
	})

	It("sums raw state values rather than counting live cells", func() {
		b.Set(1, 0, 3)
		Expect(grid.CountWeightedNeighbors(0, 0, b)).To(Equal(5))
	})

	It("ignores the cell itself", func() {
		b.Set(1, 1, 7)
		Expect(grid.CountWeightedNeighbors(1, 1, b)).To(Equal(8))
	})

	Describe("HasSuccessorNeighbor", func() {
		BeforeEach(func() {
			for i := range b.Cells() {
				b.Cells()[i] = 0
			}
		})

		It("finds the successor state", func() {
			b.Set(1, 1, 2)
			b.Set(2, 2, 3)
			Expect(grid.HasSuccessorNeighbor(1, 1, b, 4)).To(BeTrue())
		})

		It("reports false without a successor", func() {
			b.Set(1, 1, 2)
			b.Set(2, 2, 1)
			Expect(grid.HasSuccessorNeighbor(1, 1, b, 4)).To(BeFalse())
		})

		It("wraps the target state modulo states", func() {
			b.Set(0, 0, 3)
			Expect(grid.HasSuccessorNeighbor(0, 0, b, 4)).To(BeTrue())
		})

		It("does not wrap across edges", func() {
			b.Set(0, 1, 1)
			b.Set(2, 1, 2)
			Expect(grid.HasSuccessorNeighbor(0, 1, b, 4)).To(BeFalse())
		})
	})
})
