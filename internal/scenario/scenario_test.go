package scenario_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/Edwardok/C-codes/internal/scenario"
	"github.com/Edwardok/C-codes/linkedlist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("parsing scenarios", func() {
	When("the scenario is well formed", func() {
		Specify("steps are decoded", func() {
			s, err := scenario.Parse([]byte(`
name: small
steps:
  - {op: add_at, index: 0, value: 5}
  - {op: contains, value: 5, want: true}
  - {op: print, expect: []}
`))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Name).To(Equal("small"))
			Expect(s.Steps).To(HaveLen(3))
			Expect(*s.Steps[0].Index).To(Equal(0))
			Expect(*s.Steps[0].Value).To(Equal(5))
			Expect(s.Steps[1].Want).To(Equal(true))
			Expect(s.Steps[2].Expect).NotTo(BeNil())
			Expect(*s.Steps[2].Expect).To(BeEmpty())
			Expect(s.Steps[0].String()).To(Equal("add_at index=0 value=5"))
		})
	})

	DescribeTable("malformed scenarios are rejected",
		func(doc string) {
			_, err := scenario.Parse([]byte(doc))
			Expect(err).To(MatchError(ContainSubstring("invalid scenario")))
			Expect(errors.Is(err, scenario.ErrInvalid)).To(BeTrue())
		},
		Entry("no steps", "name: empty\n"),
		Entry("unknown op", "steps: [{op: push, value: 1}]\n"),
		Entry("missing index", "steps: [{op: get}]\n"),
		Entry("missing value", "steps: [{op: add_at, index: 0}]\n"),
		Entry("bad want", "steps: [{op: size, want: [1]}]\n"),
		Entry("not yaml", "steps: [\n"),
	)

	When("loading from a file", func() {
		Specify("the file is parsed", func() {
			s, err := scenario.Load(filepath.Join("testdata", "iter_add.yaml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Name).To(Equal("iterator add before next"))
		})

		Specify("errors name the file", func() {
			path := filepath.Join("testdata", "unknown_op.yaml")
			_, err := scenario.Load(path)
			Expect(err).To(MatchError(ContainSubstring(path)))
			Expect(errors.Is(err, scenario.ErrInvalid)).To(BeTrue())
		})

		Specify("missing files are reported", func() {
			_, err := scenario.Load(filepath.Join("testdata", "missing.yaml"))
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})
	})
})

var _ = Describe("running scenarios", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	When("the default scenario runs", func() {
		Specify("every expectation holds", func() {
			res, err := scenario.Run(scenario.Default(), scenario.WithOutput(out))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Values).To(BeEmpty())
			Expect(res.Outputs).To(HaveLen(len(scenario.Default().Steps)))
			Expect(out.String()).To(ContainSubstring("Values: [-1, -2, 100, 1, 2, 3, 4, 5, 20]\nSize: 9\n"))
			Expect(out.String()).To(ContainSubstring("Values: [-1, -2, 1, 2, 3, 4, 5, 20]\nSize: 8\n"))
		})
	})

	When("tracing is enabled", func() {
		Specify("each step is written before it runs", func() {
			s, err := scenario.Load(filepath.Join("testdata", "iter_add.yaml"))
			Expect(err).NotTo(HaveOccurred())

			res, err := scenario.Run(s, scenario.WithOutput(out), scenario.WithTrace(true))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Values).To(Equal([]int{0, 1, 2, 3}))
			Expect(res.Outputs[len(res.Outputs)-1]).To(Equal(1))
			Expect(out.String()).To(HavePrefix("0: add value=1\n"))
			Expect(out.String()).To(ContainSubstring("4: iter_add value=0\n"))
		})
	})

	When("a step produces an unexpected result", func() {
		Specify("the mismatch is reported", func() {
			s, err := scenario.Parse([]byte(`
name: wrong
steps:
  - {op: add, value: 1}
  - {op: get, index: 0, want: 2}
  - {op: add, value: 3}
`))
			Expect(err).NotTo(HaveOccurred())

			res, err := scenario.Run(s)
			Expect(errors.Is(err, scenario.ErrMismatch)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring(`step 1 (get index=0)`)))
			Expect(res.Values).To(Equal([]int{1}))
		})

		Specify("a wrong list is reported", func() {
			s, err := scenario.Parse([]byte(`
name: wrong list
steps:
  - {op: add, value: 1, expect: [2]}
`))
			Expect(err).NotTo(HaveOccurred())

			_, err = scenario.Run(s)
			Expect(err).To(MatchError(ContainSubstring("expected list [2], got [1]")))
		})
	})

	DescribeTable("precondition violations",
		func(file string, kind linkedlist.Kind, op string) {
			s, err := scenario.Load(filepath.Join("testdata", file))
			Expect(err).NotTo(HaveOccurred())

			res, err := scenario.Run(s, scenario.WithRecover(true))

			var lerr *linkedlist.Error
			Expect(errors.As(err, &lerr)).To(BeTrue())
			Expect(lerr.Kind).To(Equal(kind))
			Expect(lerr.Op).To(Equal(op))
			Expect(res.Values).To(BeEmpty())
		},
		Entry("double remove", "double_remove.yaml", linkedlist.IllegalState, "Remove"),
		Entry("index out of range", "out_of_range.yaml", linkedlist.IndexOutOfRange, "AddAt"),
	)

	When("the iterator was never initialized", func() {
		Specify("iterator steps fail on a nil iterator", func() {
			s, err := scenario.Parse([]byte("steps: [{op: iter_has_next}]\n"))
			Expect(err).NotTo(HaveOccurred())

			_, err = scenario.Run(s, scenario.WithRecover(true))
			Expect(errors.Is(err, linkedlist.ErrNullHandle)).To(BeTrue())
		})
	})

	When("recovery is disabled", func() {
		Specify("violations panic", func() {
			s, err := scenario.Load(filepath.Join("testdata", "double_remove.yaml"))
			Expect(err).NotTo(HaveOccurred())

			Expect(func() { scenario.Run(s) }).To(Panic())
		})
	})
})
