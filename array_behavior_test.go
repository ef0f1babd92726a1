package dynarr_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penev-ff/dynarr"
)

var _ = Describe("Array", func() {
	var a *dynarr.Array[int]

	BeforeEach(func() {
		a = dynarr.New[int]()
	})

	Describe("appending", func() {
		It("keeps elements in push order", func() {
			for i := 1; i <= 5; i++ {
				a.Push(i * 10)
			}
			Expect(a.Len()).To(Equal(5))
			Expect(a.Snapshot()).To(Equal([]int{10, 20, 30, 40, 50}))
		})

		It("doubles the capacity when full", func() {
			for i := 0; i < dynarr.DefaultCapacity; i++ {
				a.Push(i)
			}
			Expect(a.Cap()).To(Equal(dynarr.DefaultCapacity))

			a.Push(16)
			Expect(a.Cap()).To(Equal(2 * dynarr.DefaultCapacity))
			Expect(a.Len()).To(Equal(17))
		})

		It("preserves element order across growth", func() {
			for i := 0; i < 100; i++ {
				a.Push(i)
			}
			for i := 0; i < 100; i++ {
				Expect(a.At(i)).To(Equal(i))
			}
		})
	})

	Describe("removal", func() {
		It("pops in reverse push order", func() {
			a.Push(1)
			a.Push(2)
			Expect(a.Pop()).To(Equal(2))
			Expect(a.Pop()).To(Equal(1))
			Expect(a.Empty()).To(BeTrue())
		})

		It("refuses to pop when empty", func() {
			_, err := a.Pop()
			Expect(err).To(MatchError(dynarr.ErrEmpty))
		})

		It("leaves the remaining prefix unchanged", func() {
			for i := 0; i < 10; i++ {
				a.Push(i)
			}
			_, err := a.Pop()
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Len()).To(Equal(9))
			Expect(a.Snapshot()).To(Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}))
		})
	})

	Describe("bounds checking", func() {
		BeforeEach(func() {
			a.Push(7)
			a.Push(8)
		})

		It("rejects indices at the length", func() {
			_, err := a.At(2)
			Expect(err).To(MatchError(dynarr.ErrOutOfRange))
		})

		It("accepts the last valid index", func() {
			Expect(a.At(1)).To(Equal(8))
		})

		It("reports the offending index", func() {
			var ie *dynarr.IndexError
			_, err := a.At(9)
			Expect(err).To(BeAssignableToTypeOf(ie))
		})
	})

	Describe("copying", func() {
		It("isolates clones from their source", func() {
			a.Push(1)
			b := a.Clone()
			b.Push(2)
			Expect(b.Set(0, 99)).To(Succeed())

			Expect(a.Len()).To(Equal(1))
			Expect(a.At(0)).To(Equal(1))
		})

		It("isolates assignment targets from later source mutation", func() {
			src, err := dynarr.Of(5, 6)
			Expect(err).NotTo(HaveOccurred())

			a.CopyFrom(src)
			src.Push(7)

			Expect(a.Snapshot()).To(Equal([]int{5, 6}))
		})
	})

	Describe("construction", func() {
		It("rejects zero capacity", func() {
			_, err := dynarr.WithCapacity[int](0)
			Expect(err).To(MatchError(dynarr.ErrInvalidCapacity))
		})

		It("fills every slot", func() {
			f, err := dynarr.Filled(3, "x")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Snapshot()).To(Equal([]string{"x", "x", "x"}))
		})

		It("copies a literal list in order", func() {
			l, err := dynarr.Of(3, 1, 4, 1, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Len()).To(Equal(5))
			Expect(l.Front()).To(Equal(3))
			Expect(l.Back()).To(Equal(5))
		})
	})
})
