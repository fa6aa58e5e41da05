package puzzle_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

func TestPuzzle(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Puzzle Suite")
}

var _ = Describe("Puzzle", func() {
	It("fails on an empty structure", func() {
		_, err := puzzle.New(nil, []string{"ABC"})
		Expect(err).To(HaveOccurred())
	})

	It("pads ragged rows with blocked cells", func() {
		p, err := puzzle.New([][]bool{
			{true, true, true},
			{true},
		}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(p.Width()).To(Equal(3))
		Expect(p.Open(1, 0)).To(BeTrue())
		Expect(p.Open(1, 1)).To(BeFalse())
		Expect(p.Open(-1, 0)).To(BeFalse())
		Expect(p.Open(0, 3)).To(BeFalse())
	})

	It("normalizes the word list", func() {
		p, err := puzzle.New([][]bool{{true, true}}, []string{" cat ", "CAT", "dog", ""})
		Expect(err).ToNot(HaveOccurred())
		Expect(p.Words()).To(Equal([]string{"CAT", "DOG"}))
	})

	When("scanning a skeleton with one crossing", func() {
		var p *puzzle.Puzzle
		across := gridfill.Variable{Row: 0, Col: 0, Direction: gridfill.Across, Length: 3}
		down := gridfill.Variable{Row: 0, Col: 0, Direction: gridfill.Down, Length: 3}

		BeforeEach(func() {
			var err error
			p, err = puzzle.New([][]bool{
				{true, true, true},
				{true, false, false},
				{true, false, false},
			}, []string{"ABC"})
			Expect(err).ToNot(HaveOccurred())
		})

		It("finds every maximal run of at least two open cells", func() {
			Expect(p.Variables()).To(ConsistOf(across, down))
		})

		It("records mirrored overlap offsets", func() {
			o, ok := p.Overlap(across, down)
			Expect(ok).To(BeTrue())
			Expect(o).To(Equal(gridfill.Overlap{X: 0, Y: 0}))

			mirror, ok := p.Overlap(down, across)
			Expect(ok).To(BeTrue())
			Expect(mirror).To(Equal(gridfill.Overlap{X: 0, Y: 0}))
		})

		It("links crossing slots as neighbors", func() {
			Expect(p.Neighbors(across)).To(Equal([]gridfill.Variable{down}))
			Expect(p.Neighbors(down)).To(Equal([]gridfill.Variable{across}))
		})

		It("reports no constraint for non-crossing slots", func() {
			elsewhere := gridfill.Variable{Row: 5, Col: 5, Direction: gridfill.Down, Length: 4}
			_, ok := p.Overlap(across, elsewhere)
			Expect(ok).To(BeFalse())
			Expect(p.Neighbors(elsewhere)).To(BeEmpty())
		})
	})

	When("scanning a fully open square", func() {
		var p *puzzle.Puzzle

		BeforeEach(func() {
			var err error
			p, err = puzzle.New([][]bool{
				{true, true},
				{true, true},
			}, nil)
			Expect(err).ToNot(HaveOccurred())
		})

		It("finds two across and two down slots", func() {
			Expect(p.Variables()).To(HaveLen(4))
		})

		It("gives every slot two crossings with distinct offsets", func() {
			topRow := gridfill.Variable{Row: 0, Col: 0, Direction: gridfill.Across, Length: 2}
			rightCol := gridfill.Variable{Row: 0, Col: 1, Direction: gridfill.Down, Length: 2}
			Expect(p.Neighbors(topRow)).To(HaveLen(2))

			o, ok := p.Overlap(topRow, rightCol)
			Expect(ok).To(BeTrue())
			Expect(o).To(Equal(gridfill.Overlap{X: 1, Y: 0}))
		})
	})

	It("ignores runs of a single open cell", func() {
		p, err := puzzle.New([][]bool{
			{true, false, true, true},
		}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(p.Variables()).To(Equal([]gridfill.Variable{
			{Row: 0, Col: 2, Direction: gridfill.Across, Length: 2},
		}))
	})
})
