package kvring_test

import (
	"errors"

	"github.com/google/go-cmp/cmp"
	"github.com/mgnsk/kvring"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func expectClosedCycle(r *kvring.Ring[string, int]) {
	n := r.Len()
	Expect(n).To(BeNumerically(">", 0))

	for start := r.Front(); ; {
		c := start
		for i := 0; i < n; i++ {
			Expect(c.Next().Prev()).To(BeIdenticalTo(c))
			c = c.Next()
		}
		Expect(c).To(BeIdenticalTo(start))

		for i := 0; i < n; i++ {
			c = c.Prev()
		}
		Expect(c).To(BeIdenticalTo(start))

		if start = start.Next(); start == r.Front() {
			break
		}
	}
}

var _ = Describe("pushing back", func() {
	var r *kvring.Ring[string, int]

	BeforeEach(func() {
		r = newRing()
	})

	When("ring is empty", func() {
		Specify("the new node becomes a self-linked anchor", func() {
			c := r.PushBack("a", 1)

			Expect(r.Len()).To(Equal(1))
			Expect(r.IsEmpty()).To(BeFalse())
			Expect(r.Front()).To(BeIdenticalTo(c))
			Expect(c.Next()).To(BeIdenticalTo(c))
			Expect(c.Prev()).To(BeIdenticalTo(c))
		})
	})

	When("ring has nodes", func() {
		Specify("nodes are appended before the anchor in order", func() {
			r.PushBack("a", 1)
			r.PushBack("b", 2)
			r.PushBack("c", 3)

			expectClosedCycle(r)
			Expect(cmp.Diff([]pair{{"a", 1}, {"b", 2}, {"c", 3}}, pairsOf(r))).To(BeEmpty())
			Expect(r.Front().Key()).To(Equal("a"))
			Expect(r.Back().Key()).To(Equal("c"))
		})
	})
})

var _ = Describe("finding nodes", func() {
	var r *kvring.Ring[string, int]

	BeforeEach(func() {
		r = newRing(pair{"a", 1}, pair{"b", 2}, pair{"a", 3}, pair{"a", 4})
	})

	Specify("occurrences are counted from the anchor", func() {
		c := r.FindNth("a", 2)
		Expect(c.Valid()).To(BeTrue())
		Expect(c.Value()).To(Equal(3))

		Expect(r.Find("a").Value()).To(Equal(1))
		Expect(r.FindNth("a", 3).Value()).To(Equal(4))
	})

	Specify("missing occurrences return the null cursor", func() {
		Expect(r.FindNth("a", 4).IsNull()).To(BeTrue())
		Expect(r.FindNth("a", 0).IsNull()).To(BeTrue())
		Expect(r.Find("z").IsNull()).To(BeTrue())
	})

	Specify("keys are counted", func() {
		Expect(r.Count("a")).To(Equal(3))
		Expect(r.Count("b")).To(Equal(1))
		Expect(r.Count("z")).To(BeZero())
		Expect(r.Exists("b")).To(BeTrue())
		Expect(r.Exists("z")).To(BeFalse())
	})

	When("ring is empty", func() {
		Specify("nothing is found", func() {
			r = newRing()

			Expect(r.Find("a").IsNull()).To(BeTrue())
			Expect(r.Count("a")).To(BeZero())
			Expect(r.Exists("a")).To(BeFalse())
			Expect(r.Front().IsNull()).To(BeTrue())
			Expect(r.Back().IsNull()).To(BeTrue())
		})
	})
})

var _ = Describe("inserting by key", func() {
	var r *kvring.Ring[string, int]

	BeforeEach(func() {
		r = newRing(pair{"a", 1}, pair{"b", 2}, pair{"c", 3})
	})

	Specify("insert after places the node after the target", func() {
		Expect(r.InsertAfter("b", "x", 9)).To(Succeed())

		expectClosedCycle(r)
		Expect(cmp.Diff([]pair{{"a", 1}, {"b", 2}, {"x", 9}, {"c", 3}}, pairsOf(r))).To(BeEmpty())
	})

	Specify("insert before places the node before the target", func() {
		Expect(r.InsertBefore("b", "x", 9)).To(Succeed())

		expectClosedCycle(r)
		Expect(cmp.Diff([]pair{{"a", 1}, {"x", 9}, {"b", 2}, {"c", 3}}, pairsOf(r))).To(BeEmpty())
	})

	Specify("insert before the anchor keeps the anchor", func() {
		Expect(r.InsertBefore("a", "x", 9)).To(Succeed())

		Expect(r.Front().Key()).To(Equal("a"))
		Expect(r.Back().Key()).To(Equal("x"))
	})

	Specify("insert after the back node appends it", func() {
		Expect(r.InsertAfter("c", "x", 9)).To(Succeed())

		Expect(r.Front().Key()).To(Equal("a"))
		Expect(r.Back().Key()).To(Equal("x"))
	})

	Specify("the occurrence selects among duplicate keys", func() {
		r = newRing(pair{"a", 1}, pair{"b", 2}, pair{"a", 3})

		Expect(r.InsertAfterNth("a", 2, "x", 9)).To(Succeed())
		Expect(r.InsertBeforeNth("a", 2, "y", 8)).To(Succeed())

		expectClosedCycle(r)
		Expect(cmp.Diff(
			[]pair{{"a", 1}, {"b", 2}, {"y", 8}, {"a", 3}, {"x", 9}},
			pairsOf(r),
		)).To(BeEmpty())
	})
})

var _ = Describe("removing by key", func() {
	var r *kvring.Ring[string, int]

	BeforeEach(func() {
		r = newRing(pair{"a", 1}, pair{"b", 2}, pair{"c", 3})
	})

	When("the anchor is removed", func() {
		Specify("its successor becomes the anchor", func() {
			Expect(r.Remove("a")).To(Succeed())

			expectClosedCycle(r)
			Expect(r.Len()).To(Equal(2))
			Expect(r.Front().Key()).To(Equal("b"))
			Expect(cmp.Diff([]pair{{"b", 2}, {"c", 3}}, pairsOf(r))).To(BeEmpty())
		})
	})

	When("another node is removed", func() {
		Specify("the anchor stays", func() {
			Expect(r.Remove("c")).To(Succeed())

			expectClosedCycle(r)
			Expect(r.Front().Key()).To(Equal("a"))
			Expect(cmp.Diff([]pair{{"a", 1}, {"b", 2}}, pairsOf(r))).To(BeEmpty())
		})
	})

	When("the sole node is removed", func() {
		Specify("the ring becomes empty", func() {
			r = newRing(pair{"a", 1})

			Expect(r.Remove("a")).To(Succeed())
			Expect(r.IsEmpty()).To(BeTrue())
			Expect(r.Len()).To(BeZero())
		})
	})

	Specify("the occurrence selects among duplicate keys", func() {
		r = newRing(pair{"a", 1}, pair{"b", 2}, pair{"a", 3})

		Expect(r.RemoveNth("a", 2)).To(Succeed())
		Expect(cmp.Diff([]pair{{"a", 1}, {"b", 2}}, pairsOf(r))).To(BeEmpty())
	})
})

var _ = Describe("failed key-addressed operations", func() {
	type operation func(r *kvring.Ring[string, int]) error

	var (
		insertAfter = func(key string, occurrence int) operation {
			return func(r *kvring.Ring[string, int]) error {
				return r.InsertAfterNth(key, occurrence, "x", 9)
			}
		}
		insertBefore = func(key string, occurrence int) operation {
			return func(r *kvring.Ring[string, int]) error {
				return r.InsertBeforeNth(key, occurrence, "x", 9)
			}
		}
		remove = func(key string, occurrence int) operation {
			return func(r *kvring.Ring[string, int]) error {
				return r.RemoveNth(key, occurrence)
			}
		}
	)

	DescribeTable("leave the ring unchanged",
		func(pairs []pair, op operation, expected error) {
			r := newRing(pairs...)

			err := op(r)
			Expect(errors.Is(err, expected)).To(BeTrue(), "unexpected error %v", err)
			Expect(cmp.Diff(pairs, pairsOf(r))).To(BeEmpty())
		},
		Entry("insert after on empty ring", []pair(nil), insertAfter("a", 1), kvring.ErrEmpty),
		Entry("insert before on empty ring", []pair(nil), insertBefore("a", 1), kvring.ErrEmpty),
		Entry("remove on empty ring", []pair(nil), remove("a", 1), kvring.ErrEmpty),
		Entry("insert after missing key", []pair{{"a", 1}}, insertAfter("z", 1), kvring.ErrKeyNotFound),
		Entry("insert before missing key", []pair{{"a", 1}}, insertBefore("z", 1), kvring.ErrKeyNotFound),
		Entry("remove missing key", []pair{{"a", 1}}, remove("z", 1), kvring.ErrKeyNotFound),
		Entry("insert after excess occurrence", []pair{{"a", 1}, {"a", 2}}, insertAfter("a", 3), kvring.ErrOccurrenceOutOfRange),
		Entry("insert before excess occurrence", []pair{{"a", 1}, {"a", 2}}, insertBefore("a", 3), kvring.ErrOccurrenceOutOfRange),
		Entry("remove excess occurrence", []pair{{"a", 1}, {"a", 2}}, remove("a", 3), kvring.ErrOccurrenceOutOfRange),
		Entry("remove zero occurrence", []pair{{"a", 1}}, remove("a", 0), kvring.ErrOccurrenceOutOfRange),
	)
})

var _ = Describe("clearing", func() {
	Specify("clearing twice leaves the ring empty", func() {
		r := newRing(pair{"a", 1}, pair{"b", 2})
		c := r.Front()

		r.Clear()
		Expect(r.IsEmpty()).To(BeTrue())
		Expect(r.Len()).To(BeZero())
		Expect(c.Valid()).To(BeFalse())

		r.Clear()
		Expect(r.IsEmpty()).To(BeTrue())
		Expect(r.Len()).To(BeZero())
	})

	Specify("a cleared ring is reusable", func() {
		r := newRing(pair{"a", 1})
		r.Clear()
		r.PushBack("b", 2)

		expectClosedCycle(r)
		Expect(cmp.Diff([]pair{{"b", 2}}, pairsOf(r))).To(BeEmpty())
	})
})

var _ = Describe("copying", func() {
	var r *kvring.Ring[string, int]

	BeforeEach(func() {
		r = newRing(pair{"a", 1}, pair{"b", 2}, pair{"a", 3})
	})

	Specify("a clone equals its source", func() {
		c := r.Clone()

		Expect(kvring.Equal(r, c)).To(BeTrue())
		Expect(c.Front().Key()).To(Equal("a"))
		Expect(c.Front().Value()).To(Equal(1))
		expectClosedCycle(c)
	})

	Specify("mutating a clone does not affect the source", func() {
		c := r.Clone()
		c.PushBack("x", 9)
		Expect(c.Remove("b")).To(Succeed())
		c.Front().SetValue(100)

		Expect(cmp.Diff([]pair{{"a", 1}, {"b", 2}, {"a", 3}}, pairsOf(r))).To(BeEmpty())
		Expect(kvring.Equal(r, c)).To(BeFalse())
	})

	Specify("a clone of an empty ring is empty", func() {
		c := newRing().Clone()

		Expect(c.IsEmpty()).To(BeTrue())
	})

	Specify("assigning releases the destination nodes", func() {
		dst := newRing(pair{"z", 26}, pair{"y", 25})
		stale := dst.Front()

		dst.Assign(r)

		Expect(kvring.Equal(r, dst)).To(BeTrue())
		Expect(stale.Valid()).To(BeFalse())
		expectClosedCycle(dst)
	})

	Specify("assigning an empty ring empties the destination", func() {
		r.Assign(newRing())

		Expect(r.IsEmpty()).To(BeTrue())
	})

	Specify("self-assignment is a no-op", func() {
		front := r.Front()

		r.Assign(r)

		Expect(r.Front()).To(BeIdenticalTo(front))
		Expect(cmp.Diff([]pair{{"a", 1}, {"b", 2}, {"a", 3}}, pairsOf(r))).To(BeEmpty())
	})
})
