package combinations

import (
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
)

func TestGenerateConcrete(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	set := []int{0, 1, 2, 3, 4}
	generator := NewGenerator(set)

	// Act
	err := generator.Generate(2)

	// Assert
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(generator.Size()).To(Equal(uint64(10)))
	g.Expect(generator.Combinations()).To(Equal([][]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}))
	g.Expect(generator.At(0)).To(Equal([]int{0, 1}))
	g.Expect(generator.At(9)).To(Equal([]int{3, 4}))
}

func TestGenerateAgreesWithEnumerator(t *testing.T) {
	for range 10 {
		// Arrange
		g := NewWithT(t)
		var n uint64 = uint64(rand.Intn(10) + 1)
		var m uint64 = uint64(rand.Intn(int(n) + 1))

		set := make([]int, n)
		for i := range set {
			set[i] = i
		}

		generator := NewGenerator(set)
		enumerator := NewEnumerator(set)

		// Act
		err := generator.Generate(m)

		// Assert
		g.Expect(err).NotTo(HaveOccurred())

		i := uint64(0)
		for combination := enumerator.First(m); combination != nil; combination = enumerator.Next() {
			g.Expect(generator.At(i)).To(Equal(combination))
			i++
		}
		g.Expect(generator.Size()).To(Equal(i))
	}
}

func TestGenerateMatchesCount(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	counter := NewCounter()
	set := make([]int, 16)
	for i := range set {
		set[i] = i
	}
	generator := NewGenerator(set)

	// Act
	err := generator.Generate(4)
	expected, countErr := counter.Count(16, 4)

	// Assert
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(countErr).NotTo(HaveOccurred())
	g.Expect(expected).To(Equal(uint64(1820)))
	g.Expect(generator.Size()).To(Equal(expected))
}

func TestGenerateEmptySubset(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	generator := NewGenerator([]int{0, 1, 2})

	// Act
	err := generator.Generate(0)

	// Assert
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(generator.Size()).To(Equal(uint64(1)))
	g.Expect(generator.At(0)).To(BeEmpty())
}

func TestGenerateSubsetTooLarge(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	generator := NewGenerator([]int{0, 1, 2})

	// Act
	err := generator.Generate(4)

	// Assert
	g.Expect(err).To(MatchError(ErrSubsetTooLarge))
	g.Expect(generator.Size()).To(Equal(uint64(0)))
}

func TestGenerateCountOverflow(t *testing.T) {
	// Arrange
	g := NewWithT(t)
	generator := NewGenerator(make([]int, 10000))

	// Act
	err := generator.Generate(5000)

	// Assert
	g.Expect(err).To(MatchError(ErrOverflow))
	g.Expect(generator.Size()).To(Equal(uint64(0)))
}
